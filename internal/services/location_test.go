package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/boulder-log/internal/models"
	"github.com/sbilibin2017/boulder-log/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestLocationService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := services.NewMockLocationReader(ctrl)
	writer := services.NewMockLocationWriter(ctrl)
	svc := services.NewLocationService(reader, writer)

	want := []models.Location{
		{ID: 1, UserID: 42, LocationName: "Crag A"},
		{ID: 2, UserID: 42, LocationName: "Crag B"},
	}
	reader.EXPECT().ListByUserID(gomock.Any(), int64(42)).Return(want, nil)

	got, err := svc.List(context.Background(), 42)
	assert.NoError(t, err)
	assert.Equal(t, want, got)

	reader.EXPECT().ListByUserID(gomock.Any(), int64(42)).Return(nil, errors.New("db error"))
	_, err = svc.List(context.Background(), 42)
	assert.Error(t, err)
}

func TestLocationService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := services.NewMockLocationReader(ctrl)
	writer := services.NewMockLocationWriter(ctrl)
	svc := services.NewLocationService(reader, writer)

	want := &models.Location{ID: 7, UserID: 42, LocationName: "Crag A"}
	writer.EXPECT().Save(gomock.Any(), int64(42), "Crag A").Return(want, nil)

	got, err := svc.Create(context.Background(), 42, "Crag A")
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLocationService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name      string
		stored    *models.Location
		readerErr error
		wantErr   error
	}{
		{
			name:   "found",
			stored: &models.Location{ID: 7, UserID: 42, LocationName: "Crag A"},
		},
		{
			name:    "not found",
			wantErr: services.ErrLocationNotFound,
		},
		{
			name:      "reader error",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := services.NewMockLocationReader(ctrl)
			writer := services.NewMockLocationWriter(ctrl)
			svc := services.NewLocationService(reader, writer)

			reader.EXPECT().GetByID(gomock.Any(), int64(42), int64(7)).Return(tt.stored, tt.readerErr)

			got, err := svc.Get(context.Background(), 42, 7)
			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.wantErr.Error(), err.Error())
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.stored, got)
			}
		})
	}
}

func TestLocationService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		rowsAffected int64
		writerErr    error
		wantErr      error
	}{
		{name: "updated", rowsAffected: 1},
		{name: "not found", rowsAffected: 0, wantErr: services.ErrLocationNotFound},
		{name: "writer error", writerErr: errors.New("db error"), wantErr: errors.New("db error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := services.NewMockLocationReader(ctrl)
			writer := services.NewMockLocationWriter(ctrl)
			svc := services.NewLocationService(reader, writer)

			writer.EXPECT().Update(gomock.Any(), int64(42), int64(7), "Crag B").
				Return(tt.rowsAffected, tt.writerErr)

			err := svc.Update(context.Background(), 42, 7, "Crag B")
			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.wantErr.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLocationService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		rowsAffected int64
		writerErr    error
		wantErr      error
	}{
		{name: "deleted", rowsAffected: 1},
		{name: "not found", rowsAffected: 0, wantErr: services.ErrLocationNotFound},
		{name: "writer error", writerErr: errors.New("db error"), wantErr: errors.New("db error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := services.NewMockLocationReader(ctrl)
			writer := services.NewMockLocationWriter(ctrl)
			svc := services.NewLocationService(reader, writer)

			writer.EXPECT().Delete(gomock.Any(), int64(42), int64(7)).
				Return(tt.rowsAffected, tt.writerErr)

			err := svc.Delete(context.Background(), 42, 7)
			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.wantErr.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
