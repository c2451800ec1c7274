package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lotus/config"
	"lotus/infras/otel/mocks"
	therapistMocks "lotus/internal/domains/therapist/mocks"
	"lotus/internal/domains/therapist/model"
	"lotus/internal/domains/therapist/model/dto"
	"lotus/internal/domains/therapist/service"
	cacheMocks "lotus/shared/cache/mocks"
	"lotus/shared/constant"
)

func TestTherapistService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := therapistMocks.NewMockTherapist(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		req       dto.CreateTherapistRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			req: dto.CreateTherapistRequest{
				Name:      "Nok",
				StartDate: "2025-01-15",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "unparseable start date",
			req: dto.CreateTherapistRequest{
				Name:      "Nok",
				StartDate: "15/01/2025",
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "repository error",
			req: dto.CreateTherapistRequest{
				Name:      "Nok",
				StartDate: "2025-01-15",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyStaffID, "test-staff-id")
			_, err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTherapistService_GetModel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := therapistMocks.NewMockTherapist(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "found",
			id:   "therapist-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Therapist{ID: "therapist-id", Status: model.StatusActive}, nil)
			},
			wantErr: false,
		},
		{
			name: "not found",
			id:   "missing-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Therapist{}, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			id:   "therapist-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Therapist{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.GetModel(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.id, result.ID)
			}
		})
	}
}

func TestTherapistService_StatusTransitions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := therapistMocks.NewMockTherapist(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	therapist := func(status model.Status) model.Therapist {
		return model.Therapist{ID: "therapist-id", Name: "Nok", Status: status}
	}

	allowInvalidation := func() {
		mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	}

	tests := []struct {
		name      string
		call      func(ctx context.Context) error
		setupMock func()
		wantErr   bool
	}{
		{
			name: "set day off for an active therapist",
			call: func(ctx context.Context) error {
				return svc.SetDayOff(ctx, "therapist-id", dto.SetDayOffRequest{Date: "2025-06-09"})
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(therapist(model.StatusActive), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				allowInvalidation()
			},
			wantErr: false,
		},
		{
			name: "day off with unparseable date",
			call: func(ctx context.Context) error {
				return svc.SetDayOff(ctx, "therapist-id", dto.SetDayOffRequest{Date: "next monday"})
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "activate from day off",
			call: func(ctx context.Context) error {
				return svc.Activate(ctx, "therapist-id")
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(therapist(model.StatusDayOff), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				allowInvalidation()
			},
			wantErr: false,
		},
		{
			name: "resign an active therapist",
			call: func(ctx context.Context) error {
				return svc.Resign(ctx, "therapist-id")
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(therapist(model.StatusActive), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				allowInvalidation()
			},
			wantErr: false,
		},
		{
			name: "resigned is terminal",
			call: func(ctx context.Context) error {
				return svc.Activate(ctx, "therapist-id")
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(therapist(model.StatusResigned), nil)
			},
			wantErr: true,
		},
		{
			name: "cannot set day off for a resigned therapist",
			call: func(ctx context.Context) error {
				return svc.SetDayOff(ctx, "therapist-id", dto.SetDayOffRequest{Date: "2025-06-09"})
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(therapist(model.StatusResigned), nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyStaffID, "test-staff-id")
			err := tt.call(ctx)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
