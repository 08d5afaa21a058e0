package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"fireDispatch/internal/domain"
	"fireDispatch/internal/service"
	mock_service "fireDispatch/internal/service/mocks"
	"fireDispatch/pkg/e"
)

func TestStationResolver_Resolve(t *testing.T) {
	t.Parallel()

	central := uuid.New()
	north := uuid.New()
	explicit := uuid.New()
	dbErr := errors.New("db down")
	refs := []domain.StationRef{
		{ID: central, Name: "Accra Central Fire Station"},
		{ID: north, Name: "Accra North Fire Station"},
	}
	ho := uuid.New()
	withHo := append([]domain.StationRef{{ID: ho, Name: "Ho"}}, refs...)

	tests := []struct {
		name    string
		target  domain.StationTarget
		setup   func(st *mock_service.MockStationRepository, c *mock_service.MockStationDirectoryCache)
		want    uuid.UUID
		wantErr error
	}{
		{
			name:    "empty target",
			target:  domain.StationTarget{},
			setup:   func(*mock_service.MockStationRepository, *mock_service.MockStationDirectoryCache) {},
			wantErr: e.ErrInvalidInput,
		},
		{
			name:   "explicit id skips lookups",
			target: domain.StationTarget{ID: &explicit, Name: "ignored"},
			setup:  func(*mock_service.MockStationRepository, *mock_service.MockStationDirectoryCache) {},
			want:   explicit,
		},
		{
			name:   "place id",
			target: domain.StationTarget{PlaceID: "ChIJ-central"},
			setup: func(st *mock_service.MockStationRepository, _ *mock_service.MockStationDirectoryCache) {
				st.EXPECT().GetByPlaceID(gomock.Any(), "ChIJ-central").Return(&domain.Station{ID: central}, nil)
			},
			want: central,
		},
		{
			name:   "place id miss falls through to coordinates",
			target: domain.StationTarget{PlaceID: "gone", Coordinates: &domain.Coordinates{Lat: 5.6, Lng: -0.19}},
			setup: func(st *mock_service.MockStationRepository, _ *mock_service.MockStationDirectoryCache) {
				st.EXPECT().GetByPlaceID(gomock.Any(), "gone").Return(nil, e.NotFound("station"))
				st.EXPECT().FindNearest(gomock.Any(), 5.6, -0.19, 3.0).Return(&domain.Station{ID: north}, nil)
			},
			want: north,
		},
		{
			name:   "name from cache",
			target: domain.StationTarget{Name: "accra-central"},
			setup: func(_ *mock_service.MockStationRepository, c *mock_service.MockStationDirectoryCache) {
				c.EXPECT().GetRefs(gomock.Any()).Return(refs, nil)
			},
			want: central,
		},
		{
			name:   "cache miss loads and stores directory",
			target: domain.StationTarget{Name: "North"},
			setup: func(st *mock_service.MockStationRepository, c *mock_service.MockStationDirectoryCache) {
				c.EXPECT().GetRefs(gomock.Any()).Return(nil, nil)
				st.EXPECT().ListRefs(gomock.Any()).Return(refs, nil)
				c.EXPECT().SetRefs(gomock.Any(), refs, time.Minute).Return(nil)
			},
			want: north,
		},
		{
			name:   "cache failure degrades to store",
			target: domain.StationTarget{Name: "Accra Central"},
			setup: func(st *mock_service.MockStationRepository, c *mock_service.MockStationDirectoryCache) {
				c.EXPECT().GetRefs(gomock.Any()).Return(nil, errors.New("redis down"))
				st.EXPECT().ListRefs(gomock.Any()).Return(refs, nil)
				c.EXPECT().SetRefs(gomock.Any(), refs, time.Minute).Return(errors.New("redis down"))
			},
			want: central,
		},
		{
			name:   "shortest containing name wins",
			target: domain.StationTarget{Name: "accra"},
			setup: func(_ *mock_service.MockStationRepository, c *mock_service.MockStationDirectoryCache) {
				c.EXPECT().GetRefs(gomock.Any()).Return(refs, nil)
			},
			want: north,
		},
		{
			name:   "short name is not contained in a longer query",
			target: domain.StationTarget{Name: "Hohoe Road"},
			setup: func(_ *mock_service.MockStationRepository, c *mock_service.MockStationDirectoryCache) {
				c.EXPECT().GetRefs(gomock.Any()).Return(withHo, nil)
			},
			wantErr: e.ErrNotFound,
		},
		{
			name:   "short query does not match longer names",
			target: domain.StationTarget{Name: "ac"},
			setup: func(_ *mock_service.MockStationRepository, c *mock_service.MockStationDirectoryCache) {
				c.EXPECT().GetRefs(gomock.Any()).Return(refs, nil)
			},
			wantErr: e.ErrNotFound,
		},
		{
			name:   "short name still matches exactly",
			target: domain.StationTarget{Name: "HO fire station"},
			setup: func(_ *mock_service.MockStationRepository, c *mock_service.MockStationDirectoryCache) {
				c.EXPECT().GetRefs(gomock.Any()).Return(withHo, nil)
			},
			want: ho,
		},
		{
			name:   "no match",
			target: domain.StationTarget{Name: "Kumasi"},
			setup: func(_ *mock_service.MockStationRepository, c *mock_service.MockStationDirectoryCache) {
				c.EXPECT().GetRefs(gomock.Any()).Return(refs, nil)
			},
			wantErr: e.ErrNotFound,
		},
		{
			name:   "store error surfaces",
			target: domain.StationTarget{PlaceID: "x"},
			setup: func(st *mock_service.MockStationRepository, _ *mock_service.MockStationDirectoryCache) {
				st.EXPECT().GetByPlaceID(gomock.Any(), "x").Return(nil, dbErr)
			},
			wantErr: dbErr,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			st := mock_service.NewMockStationRepository(ctrl)
			c := mock_service.NewMockStationDirectoryCache(ctrl)
			tt.setup(st, c)

			r := service.NewStationResolver(st, c, newTestLogger(), 3, time.Minute)
			got, err := r.Resolve(context.Background(), tt.target)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}
