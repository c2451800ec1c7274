package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lotus/config"
	kafkaMocks "lotus/infras/kafka/mocks"
	"lotus/infras/otel/mocks"
	bookingMocks "lotus/internal/domains/booking/mocks"
	customerMocks "lotus/internal/domains/customer/mocks"
	"lotus/internal/domains/customer/model"
	"lotus/internal/domains/customer/model/dto"
	"lotus/internal/domains/customer/service"
	cacheMocks "lotus/shared/cache/mocks"
	"lotus/shared/constant"
)

func TestCustomerService_Upsert(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := customerMocks.NewMockCustomer(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockPublisher := kafkaMocks.NewMockPublisher(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockBookingRepo, cfg, mockCache, mockOtel, mockPublisher)

	stored := model.Customer{
		Phone: "0812345678",
		Name:  "Somsri",
	}

	tests := []struct {
		name      string
		req       dto.UpsertCustomerRequest
		setupMock func()
		wantErr   bool
		wantPhone string
	}{
		{
			name: "successful upsert",
			req: dto.UpsertCustomerRequest{
				Phone: "081-234-5678",
				Name:  "Somsri",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					UpsertIdentity(gomock.Any(), gomock.Any()).
					Return(nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(stored, nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:   false,
			wantPhone: "0812345678",
		},
		{
			name: "invalid phone rejected before any repo call",
			req: dto.UpsertCustomerRequest{
				Phone: "123",
				Name:  "Somsri",
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "upsert error",
			req: dto.UpsertCustomerRequest{
				Phone: "0812345678",
				Name:  "Somsri",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					UpsertIdentity(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "read back error",
			req: dto.UpsertCustomerRequest{
				Phone: "0812345678",
				Name:  "Somsri",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					UpsertIdentity(gomock.Any(), gomock.Any()).
					Return(nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Customer{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyStaffID, "test-staff-id")
			result, err := svc.Upsert(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantPhone, result.Phone)
			}
		})
	}
}

func TestCustomerService_FindByPhone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := customerMocks.NewMockCustomer(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockPublisher := kafkaMocks.NewMockPublisher(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockBookingRepo, cfg, mockCache, mockOtel, mockPublisher)

	stored := model.Customer{
		Phone:       "0812345678",
		Name:        "Somsri",
		TotalVisits: 4,
	}

	tests := []struct {
		name      string
		phone     string
		setupMock func()
		wantErr   bool
		wantPhone string
	}{
		{
			name:  "cache hit",
			phone: "0812345678",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:  "cache miss, found in db",
			phone: "081 234 5678",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(stored, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:   false,
			wantPhone: "0812345678",
		},
		{
			name:  "not found",
			phone: "0899999999",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Customer{}, nil)
			},
			wantErr: true,
		},
		{
			name:  "repository error",
			phone: "0812345678",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Customer{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.FindByPhone(context.Background(), tt.phone)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.wantPhone != "" {
					assert.Equal(t, tt.wantPhone, result.Phone)
				}
			}
		})
	}
}

func TestCustomerService_Merge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := customerMocks.NewMockCustomer(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockPublisher := kafkaMocks.NewMockPublisher(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockBookingRepo, cfg, mockCache, mockOtel, mockPublisher)

	source := model.Customer{Phone: "0811111111", Name: "Somsri"}
	target := model.Customer{Phone: "0822222222", Name: "Somsri S."}

	tests := []struct {
		name      string
		req       dto.MergeCustomerRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "merging a customer into itself is rejected",
			req: dto.MergeCustomerRequest{
				FromPhone: "081-111-1111",
				ToPhone:   "0811111111",
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "source customer not found",
			req: dto.MergeCustomerRequest{
				FromPhone: "0811111111",
				ToPhone:   "0822222222",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Customer{}, nil)
			},
			wantErr: true,
		},
		{
			name: "target customer not found",
			req: dto.MergeCustomerRequest{
				FromPhone: "0811111111",
				ToPhone:   "0822222222",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(source, nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Customer{}, nil)
			},
			wantErr: true,
		},
		{
			name: "transaction begin error",
			req: dto.MergeCustomerRequest{
				FromPhone: "0811111111",
				ToPhone:   "0822222222",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(source, nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(target, nil)

				mockRepo.EXPECT().
					BeginTx(gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Merge(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCustomerService_ChangeContactKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := customerMocks.NewMockCustomer(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockPublisher := kafkaMocks.NewMockPublisher(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockBookingRepo, cfg, mockCache, mockOtel, mockPublisher)

	current := model.Customer{Phone: "0811111111", Name: "Somsri", TotalVisits: 3}

	tests := []struct {
		name         string
		currentPhone string
		req          dto.ChangeContactKeyRequest
		setupMock    func()
		wantErr      bool
	}{
		{
			name:         "invalid new phone",
			currentPhone: "0811111111",
			req:          dto.ChangeContactKeyRequest{NewPhone: "123"},
			setupMock:    func() {},
			wantErr:      true,
		},
		{
			name:         "new phone equals current phone",
			currentPhone: "0811111111",
			req:          dto.ChangeContactKeyRequest{NewPhone: "081-111-1111"},
			setupMock:    func() {},
			wantErr:      true,
		},
		{
			name:         "current customer not found",
			currentPhone: "0811111111",
			req:          dto.ChangeContactKeyRequest{NewPhone: "0822222222"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Customer{}, nil)
			},
			wantErr: true,
		},
		{
			name:         "target lookup error",
			currentPhone: "0811111111",
			req:          dto.ChangeContactKeyRequest{NewPhone: "0822222222"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(current, nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Customer{}, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name:         "fresh target, upsert error",
			currentPhone: "0811111111",
			req:          dto.ChangeContactKeyRequest{NewPhone: "0822222222"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(current, nil)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Customer{}, nil)

				mockRepo.EXPECT().
					UpsertIdentity(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.ChangeContactKey(context.Background(), tt.currentPhone, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCustomerService_RecordVisit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := customerMocks.NewMockCustomer(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockPublisher := kafkaMocks.NewMockPublisher(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockBookingRepo, cfg, mockCache, mockOtel, mockPublisher)

	t.Run("transaction begin error", func(t *testing.T) {
		mockRepo.EXPECT().
			BeginTx(gomock.Any()).
			Return(nil, errors.New("database error"))

		err := svc.RecordVisit(context.Background(), model.Visit{Phone: "0811111111", Amount: 300})
		assert.Error(t, err)
	})
}

func TestCustomerService_ReverseVisit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := customerMocks.NewMockCustomer(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockPublisher := kafkaMocks.NewMockPublisher(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockBookingRepo, cfg, mockCache, mockOtel, mockPublisher)

	t.Run("transaction begin error", func(t *testing.T) {
		mockRepo.EXPECT().
			BeginTx(gomock.Any()).
			Return(nil, errors.New("database error"))

		err := svc.ReverseVisit(context.Background(), "0811111111", 300)
		assert.Error(t, err)
	})
}
