package contact

import (
	"context"
	"time"

	"github.com/okozak/contacts-api/constant"
	"github.com/okozak/contacts-api/model"
	contactrepo "github.com/okozak/contacts-api/repository/contact"
	"github.com/okozak/contacts-api/utils/errors"
	"github.com/okozak/contacts-api/utils/logger"
	"go.uber.org/zap"
)

// birthdayWindowDays is the lookahead of the upcoming-birthdays endpoint,
// inclusive of both ends.
const birthdayWindowDays = 7

// ContactApp exposes the owner-scoped contact operations. The user id always
// comes from the authenticated request context, never from the body, and a
// contact belonging to another user is reported exactly like a missing one.
type ContactApp interface {
	ListContacts(ctx context.Context, userID uint64, skip, limit int) ([]model.ContactEntity, error)
	GetContact(ctx context.Context, userID, contactID uint64) (*model.ContactEntity, error)
	CreateContact(ctx context.Context, userID uint64, req *model.ContactRequest) (*model.ContactEntity, error)
	UpdateContact(ctx context.Context, userID, contactID uint64, req *model.ContactRequest) (*model.ContactEntity, error)
	DeleteContact(ctx context.Context, userID, contactID uint64) (*model.ContactEntity, error)
	SearchContacts(ctx context.Context, userID uint64, skip, limit int, filter *model.ContactFilter) ([]model.ContactEntity, error)
	UpcomingBirthdays(ctx context.Context, userID uint64, skip, limit int) ([]model.ContactEntity, error)
}

type contactAppImpl struct {
	contactRepo contactrepo.ContactRepository
}

func NewContactApp(contactRepo contactrepo.ContactRepository) ContactApp {
	return &contactAppImpl{contactRepo: contactRepo}
}

func (s *contactAppImpl) ListContacts(ctx context.Context, userID uint64, skip, limit int) ([]model.ContactEntity, error) {
	contacts, err := s.contactRepo.List(ctx, userID, skip, limit)
	if err != nil {
		logger.Error("[ListContacts] err contactRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return contacts, nil
}

func (s *contactAppImpl) GetContact(ctx context.Context, userID, contactID uint64) (*model.ContactEntity, error) {
	entity, err := s.contactRepo.Get(ctx, userID, contactID)
	if err != nil {
		logger.Error("[GetContact] err contactRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return entity, nil
}

func (s *contactAppImpl) CreateContact(ctx context.Context, userID uint64, req *model.ContactRequest) (*model.ContactEntity, error) {
	entity := &model.ContactEntity{
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Email:     req.Email,
		Phone:     req.Phone,
		Birthday:  req.Birthday,
	}

	entity, err := s.contactRepo.Create(ctx, userID, entity)
	if err != nil {
		logger.Error("[CreateContact] err contactRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return entity, nil
}

func (s *contactAppImpl) UpdateContact(ctx context.Context, userID, contactID uint64, req *model.ContactRequest) (*model.ContactEntity, error) {
	entity := &model.ContactEntity{
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Email:     req.Email,
		Phone:     req.Phone,
		Birthday:  req.Birthday,
	}

	entity, err := s.contactRepo.Update(ctx, userID, contactID, entity)
	if err != nil {
		logger.Error("[UpdateContact] err contactRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return entity, nil
}

func (s *contactAppImpl) DeleteContact(ctx context.Context, userID, contactID uint64) (*model.ContactEntity, error) {
	entity, err := s.contactRepo.Delete(ctx, userID, contactID)
	if err != nil {
		logger.Error("[DeleteContact] err contactRepo.Delete", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return entity, nil
}

func (s *contactAppImpl) SearchContacts(ctx context.Context, userID uint64, skip, limit int, filter *model.ContactFilter) ([]model.ContactEntity, error) {
	// Searching without any criterion would degrade into a full listing,
	// so it is rejected before touching storage.
	if !filter.HasCriteria() {
		return nil, errors.SetCustomError(constant.ErrSearchCriteria)
	}

	contacts, err := s.contactRepo.Search(ctx, userID, skip, limit, filter)
	if err != nil {
		logger.Error("[SearchContacts] err contactRepo.Search", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return contacts, nil
}

// UpcomingBirthdays returns the contacts whose birthday (month and day,
// year ignored) falls within the next seven days. The repository evaluates
// the whole window; skip and limit are applied to the matched set here.
func (s *contactAppImpl) UpcomingBirthdays(ctx context.Context, userID uint64, skip, limit int) ([]model.ContactEntity, error) {
	window := model.NewBirthdayWindow(time.Now(), birthdayWindowDays)

	contacts, err := s.contactRepo.UpcomingBirthdays(ctx, userID, window)
	if err != nil {
		logger.Error("[UpcomingBirthdays] err contactRepo.UpcomingBirthdays", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return paginate(contacts, skip, limit), nil
}

func paginate(contacts []model.ContactEntity, skip, limit int) []model.ContactEntity {
	if skip < 0 {
		skip = 0
	}
	if skip >= len(contacts) {
		return []model.ContactEntity{}
	}
	end := len(contacts)
	if limit >= 0 && skip+limit < end {
		end = skip + limit
	}
	return contacts[skip:end]
}
