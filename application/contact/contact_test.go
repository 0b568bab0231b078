package contact_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appcontact "github.com/okozak/contacts-api/application/contact"
	"github.com/okozak/contacts-api/constant"
	contactmocks "github.com/okozak/contacts-api/mocks/repository/contact"
	"github.com/okozak/contacts-api/model"
	cerr "github.com/okozak/contacts-api/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func sampleContact(id, userID uint64) model.ContactEntity {
	return model.ContactEntity{
		ID:        id,
		Firstname: "Spider",
		Lastname:  "Man",
		Email:     "spider@man.com",
		Phone:     "1234567890",
		Birthday:  model.NewDate(1990, time.March, 5),
		UserID:    userID,
	}
}

func TestContactApp_GetContact(t *testing.T) {
	type args struct {
		userID    uint64
		contactID uint64
	}
	tests := []struct {
		name     string
		args     args
		mockCall func(repo *contactmocks.ContactRepository)
		want     *model.ContactEntity
		wantErr  error
	}{
		{
			name: "success: contact found",
			args: args{userID: 7, contactID: 2},
			mockCall: func(repo *contactmocks.ContactRepository) {
				entity := sampleContact(2, 7)
				repo.On("Get", mock.Anything, uint64(7), uint64(2)).Return(&entity, nil).Once()
			},
			want: func() *model.ContactEntity { e := sampleContact(2, 7); return &e }(),
		},
		{
			name: "error: absent id reported as not found",
			args: args{userID: 7, contactID: 42},
			mockCall: func(repo *contactmocks.ContactRepository) {
				repo.On("Get", mock.Anything, uint64(7), uint64(42)).Return(nil, nil).Once()
			},
			wantErr: cerr.SetCustomError(constant.ErrNotFound),
		},
		{
			name: "error: repository failure surfaces as internal",
			args: args{userID: 7, contactID: 2},
			mockCall: func(repo *contactmocks.ContactRepository) {
				repo.On("Get", mock.Anything, uint64(7), uint64(2)).Return(nil, errors.New("db error")).Once()
			},
			wantErr: cerr.SetCustomError(constant.ErrInternal),
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := contactmocks.NewContactRepository(t)
			tt.mockCall(repo)
			app := appcontact.NewContactApp(repo)

			got, err := app.GetContact(context.Background(), tt.args.userID, tt.args.contactID)
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				assert.Nil(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContactApp_CreateContact(t *testing.T) {
	repo := contactmocks.NewContactRepository(t)
	repo.On("Create", mock.Anything, uint64(7), mock.MatchedBy(func(e *model.ContactEntity) bool {
		return e.Firstname == "Spider" &&
			e.Lastname == "Man" &&
			e.Email == "spider@man.com" &&
			e.Phone == "1234567890" &&
			e.Birthday.Month() == time.March
	})).Return(func(ctx context.Context, userID uint64, e *model.ContactEntity) *model.ContactEntity {
		e.ID = 5
		e.UserID = userID
		return e
	}, nil).Once()

	app := appcontact.NewContactApp(repo)
	got, err := app.CreateContact(context.Background(), 7, &model.ContactRequest{
		Firstname: "Spider",
		Lastname:  "Man",
		Email:     "spider@man.com",
		Phone:     "1234567890",
		Birthday:  model.NewDate(1990, time.March, 5),
	})
	assert.NoError(t, err)
	assert.Equal(t, uint64(5), got.ID)
	assert.Equal(t, uint64(7), got.UserID)
}

func TestContactApp_UpdateContact(t *testing.T) {
	tests := []struct {
		name     string
		mockCall func(repo *contactmocks.ContactRepository)
		wantErr  error
	}{
		{
			name: "success: all fields replaced",
			mockCall: func(repo *contactmocks.ContactRepository) {
				entity := sampleContact(2, 7)
				repo.On("Update", mock.Anything, uint64(7), uint64(2), mock.AnythingOfType("*model.ContactEntity")).
					Return(&entity, nil).Once()
			},
		},
		{
			name: "error: unknown id is not found",
			mockCall: func(repo *contactmocks.ContactRepository) {
				repo.On("Update", mock.Anything, uint64(7), uint64(2), mock.AnythingOfType("*model.ContactEntity")).
					Return(nil, nil).Once()
			},
			wantErr: cerr.SetCustomError(constant.ErrNotFound),
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			repo := contactmocks.NewContactRepository(t)
			tt.mockCall(repo)
			app := appcontact.NewContactApp(repo)

			got, err := app.UpdateContact(context.Background(), 7, 2, &model.ContactRequest{
				Firstname: "Spider",
				Lastname:  "Man",
				Email:     "spider@man.com",
				Phone:     "1234567890",
				Birthday:  model.NewDate(1990, time.March, 5),
			})
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, got)
		})
	}
}

func TestContactApp_DeleteContact(t *testing.T) {
	t.Run("success: returns removed contact", func(t *testing.T) {
		repo := contactmocks.NewContactRepository(t)
		entity := sampleContact(2, 7)
		repo.On("Delete", mock.Anything, uint64(7), uint64(2)).Return(&entity, nil).Once()

		app := appcontact.NewContactApp(repo)
		got, err := app.DeleteContact(context.Background(), 7, 2)
		assert.NoError(t, err)
		assert.Equal(t, uint64(2), got.ID)
	})

	t.Run("error: already deleted id is not found", func(t *testing.T) {
		repo := contactmocks.NewContactRepository(t)
		repo.On("Delete", mock.Anything, uint64(7), uint64(2)).Return(nil, nil).Once()

		app := appcontact.NewContactApp(repo)
		_, err := app.DeleteContact(context.Background(), 7, 2)
		assert.Equal(t, cerr.SetCustomError(constant.ErrNotFound), err)
	})
}

func TestContactApp_SearchContacts(t *testing.T) {
	t.Run("error: no criteria is rejected before storage", func(t *testing.T) {
		repo := contactmocks.NewContactRepository(t)

		app := appcontact.NewContactApp(repo)
		_, err := app.SearchContacts(context.Background(), 7, 0, 100, &model.ContactFilter{})
		assert.Equal(t, cerr.SetCustomError(constant.ErrSearchCriteria), err)
		repo.AssertNotCalled(t, "Search")
	})

	t.Run("success: filter passed through unchanged", func(t *testing.T) {
		repo := contactmocks.NewContactRepository(t)
		filter := &model.ContactFilter{Firstname: "spi"}
		repo.On("Search", mock.Anything, uint64(7), 0, 100, filter).
			Return([]model.ContactEntity{sampleContact(2, 7)}, nil).Once()

		app := appcontact.NewContactApp(repo)
		got, err := app.SearchContacts(context.Background(), 7, 0, 100, filter)
		assert.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("error: storage failure surfaces as internal", func(t *testing.T) {
		repo := contactmocks.NewContactRepository(t)
		filter := &model.ContactFilter{Email: "man.com"}
		repo.On("Search", mock.Anything, uint64(7), 0, 100, filter).
			Return(nil, errors.New("db error")).Once()

		app := appcontact.NewContactApp(repo)
		_, err := app.SearchContacts(context.Background(), 7, 0, 100, filter)
		assert.Equal(t, cerr.SetCustomError(constant.ErrInternal), err)
	})
}

func TestContactApp_UpcomingBirthdays(t *testing.T) {
	t.Run("window covers seven days and pagination applies to matches", func(t *testing.T) {
		repo := contactmocks.NewContactRepository(t)
		matches := []model.ContactEntity{sampleContact(1, 7), sampleContact(2, 7), sampleContact(3, 7)}
		var captured model.BirthdayWindow
		repo.On("UpcomingBirthdays", mock.Anything, uint64(7), mock.AnythingOfType("model.BirthdayWindow")).
			Run(func(args mock.Arguments) {
				captured = args.Get(2).(model.BirthdayWindow)
			}).
			Return(matches, nil).Once()

		app := appcontact.NewContactApp(repo)
		got, err := app.UpcomingBirthdays(context.Background(), 7, 1, 1)
		assert.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, uint64(2), got[0].ID)

		want := model.NewBirthdayWindow(time.Now(), 7)
		assert.Equal(t, want, captured)
	})

	t.Run("skip beyond matches yields empty result", func(t *testing.T) {
		repo := contactmocks.NewContactRepository(t)
		repo.On("UpcomingBirthdays", mock.Anything, uint64(7), mock.AnythingOfType("model.BirthdayWindow")).
			Return([]model.ContactEntity{sampleContact(1, 7)}, nil).Once()

		app := appcontact.NewContactApp(repo)
		got, err := app.UpcomingBirthdays(context.Background(), 7, 5, 10)
		assert.NoError(t, err)
		assert.Empty(t, got)
	})
}
