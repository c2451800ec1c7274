package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lotus/config"
	"lotus/infras/otel/mocks"
	s3Mocks "lotus/infras/s3/mocks"
	bookingMocks "lotus/internal/domains/booking/mocks"
	bookingModel "lotus/internal/domains/booking/model"
	catalogMocks "lotus/internal/domains/catalog/mocks"
	catalogModel "lotus/internal/domains/catalog/model"
	"lotus/internal/domains/report/model/dto"
	"lotus/internal/domains/report/service"
	therapistMocks "lotus/internal/domains/therapist/mocks"
	therapistModel "lotus/internal/domains/therapist/model"
	cacheMocks "lotus/shared/cache/mocks"
)

type reportMockSet struct {
	booking   *bookingMocks.MockBooking
	therapist *therapistMocks.MockTherapist
	catalog   *catalogMocks.MockCatalog
	storage   *s3Mocks.MockS3
	cache     *cacheMocks.MockRedisCache
}

func newReportService(ctrl *gomock.Controller) (service.Report, reportMockSet) {
	m := reportMockSet{
		booking:   bookingMocks.NewMockBooking(ctrl),
		therapist: therapistMocks.NewMockTherapist(ctrl),
		catalog:   catalogMocks.NewMockCatalog(ctrl),
		storage:   s3Mocks.NewMockS3(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Shop.Currency = "THB"

	svc := service.New(m.booking, m.therapist, m.catalog, m.storage, cfg, m.cache, mocks.NewOtel())

	return svc, m
}

// allowCacheSave covers the cache write that runs in a goroutine after a
// computed report.
func allowCacheSave(m reportMockSet) {
	m.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
}

func completedBooking(therapistID, serviceID string, start time.Time, original, final, commission int64) bookingModel.Booking {
	return bookingModel.Booking{
		TherapistID:         therapistID,
		ServiceID:           serviceID,
		StartTime:           start,
		DurationMin:         60,
		Status:              bookingModel.StatusDone,
		OriginalPrice:       original,
		FinalPrice:          final,
		TherapistCommission: commission,
		ShopRevenue:         final - commission,
	}
}

func TestReportService_Revenue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newReportService(ctrl)
	allowCacheSave(m)

	ctx := context.Background()

	start := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	stored := []bookingModel.Booking{
		completedBooking("t1", "s1", start, 300, 300, 120),
		completedBooking("t2", "s1", start.Add(time.Hour), 420, 378, 168),
	}

	tests := []struct {
		name      string
		req       dto.RangeRequest
		setupMock func()
		wantErr   bool
		check     func(t *testing.T, res dto.RevenueSummaryResponse)
	}{
		{
			name: "cache hit",
			req:  dto.RangeRequest{From: "2025-06-01", To: "2025-06-30"},
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), "report:revenue:2025-06-01:2025-06-30", gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss computes summary",
			req:  dto.RangeRequest{From: "2025-06-01", To: "2025-06-30"},
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.booking.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(stored, nil)
			},
			wantErr: false,
			check: func(t *testing.T, res dto.RevenueSummaryResponse) {
				assert.Equal(t, "2025-06-01", res.From)
				assert.Equal(t, "THB", res.Currency)
				assert.Equal(t, 2, res.Summary.BookingCount)
				assert.Equal(t, int64(720), res.Summary.OriginalRevenue)
				assert.Equal(t, int64(678), res.Summary.FinalRevenue)
				assert.Equal(t, int64(288), res.Summary.TotalCommission)
				assert.Equal(t, int64(390), res.Summary.TotalShopRevenue)
			},
		},
		{
			name: "unparseable from date",
			req:  dto.RangeRequest{From: "June 1st", To: "2025-06-30"},
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))
			},
			wantErr: true,
		},
		{
			name: "to date precedes from date",
			req:  dto.RangeRequest{From: "2025-06-30", To: "2025-06-01"},
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))
			},
			wantErr: true,
		},
		{
			name: "repository error",
			req:  dto.RangeRequest{From: "2025-06-01", To: "2025-06-30"},
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.booking.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Revenue(ctx, tt.req)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)

			if tt.check != nil {
				tt.check(t, res)
			}
		})
	}
}

func TestReportService_Leaderboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newReportService(ctrl)
	allowCacheSave(m)

	ctx := context.Background()

	start := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	stored := []bookingModel.Booking{
		completedBooking("t1", "s1", start, 300, 300, 120),
		completedBooking("t2", "s1", start.Add(time.Hour), 420, 420, 168),
		completedBooking("t2", "s1", start.Add(2*time.Hour), 300, 300, 120),
	}
	therapists := []therapistModel.Therapist{
		{ID: "t1", Name: "Anong"},
		{ID: "t2", Name: "Busaba"},
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		check     func(t *testing.T, res dto.LeaderboardResponse)
	}{
		{
			name: "cache miss computes standings",
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.booking.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(stored, nil)

				m.therapist.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(therapists, nil)
			},
			wantErr: false,
			check: func(t *testing.T, res dto.LeaderboardResponse) {
				assert.Len(t, res.Standings, 2)
				assert.Equal(t, "t2", res.Standings[0].TherapistID)
				assert.Equal(t, "Busaba", res.Standings[0].TherapistName)
				assert.Equal(t, int64(288), res.Standings[0].Commission)
			},
		},
		{
			name: "therapist lookup error",
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.booking.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(stored, nil)

				m.therapist.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Leaderboard(ctx, dto.RangeRequest{From: "2025-06-01", To: "2025-06-30"})
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)

			if tt.check != nil {
				tt.check(t, res)
			}
		})
	}
}

func TestReportService_Export(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newReportService(ctrl)

	ctx := context.Background()

	start := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	stored := []bookingModel.Booking{
		completedBooking("t1", "s1", start, 300, 300, 120),
	}
	therapists := []therapistModel.Therapist{{ID: "t1", Name: "Anong"}}
	services := []catalogModel.Service{{ID: "s1", Name: "Thai Massage"}}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantURL   string
	}{
		{
			name: "successful export",
			setupMock: func() {
				m.booking.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(stored, nil)

				m.therapist.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(therapists, nil)

				m.catalog.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(services, nil)

				m.storage.EXPECT().
					UploadFileBytes(gomock.Any(), gomock.Any(), "reports", gomock.Any(), gomock.Any(), gomock.Any()).
					Return("https://cdn.example.com/reports/revenue.csv", nil)
			},
			wantErr: false,
			wantURL: "https://cdn.example.com/reports/revenue.csv",
		},
		{
			name: "upload error",
			setupMock: func() {
				m.booking.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(stored, nil)

				m.therapist.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(therapists, nil)

				m.catalog.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(services, nil)

				m.storage.EXPECT().
					UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.New("storage unavailable"))
			},
			wantErr: true,
		},
		{
			name:      "unparseable range",
			setupMock: func() {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			req := dto.ExportRequest{From: "2025-06-01", To: "2025-06-30"}
			if tt.name == "unparseable range" {
				req.From = "not-a-date"
			}

			res, err := svc.Export(ctx, req)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantURL, res.URL)
		})
	}
}
