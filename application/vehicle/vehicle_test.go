package vehicle_test

import (
	"context"
	"errors"
	"testing"

	appvehicle "github.com/divyaalluri1312/FriendFleet/application/vehicle"
	"github.com/divyaalluri1312/FriendFleet/cmd/config"
	"github.com/divyaalluri1312/FriendFleet/constant"
	vehiclemocks "github.com/divyaalluri1312/FriendFleet/mocks/repository/vehicle"
	"github.com/divyaalluri1312/FriendFleet/model"
	cerr "github.com/divyaalluri1312/FriendFleet/utils/errors"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestVehicleApp_Register(t *testing.T) {
	ownerID := primitive.NewObjectID()
	vehicleID := primitive.NewObjectID()

	type fields struct {
		config      *config.Config
		vehicleRepo *vehiclemocks.VehicleRepository
	}
	type args struct {
		ctx    context.Context
		userID string
		req    *model.RegisterVehicleRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		want     *model.VehicleResponse
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: register vehicle",
			fields: fields{
				config:      &config.Config{},
				vehicleRepo: vehiclemocks.NewVehicleRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: ownerID.Hex(),
				req: &model.RegisterVehicleRequest{
					Number: "KA01AB1234",
					Type:   "car",
					Model:  "Swift",
				},
			},
			mockCall: func(f fields) {
				f.vehicleRepo.
					On("Get", mock.Anything, &model.VehicleFilter{Number: "KA01AB1234"}).
					Return(nil, nil).
					Once()

				f.vehicleRepo.
					On("Create", mock.Anything, &model.VehicleEntity{
						Number: "KA01AB1234",
						Type:   "car",
						Model:  "Swift",
						Owner:  ownerID,
					}).
					Return(&model.VehicleEntity{
						ID:     vehicleID,
						Number: "KA01AB1234",
						Type:   "car",
						Model:  "Swift",
						Owner:  ownerID,
					}, nil).
					Once()
			},
			want: &model.VehicleResponse{
				Vehicle: &model.VehicleEntity{
					ID:     vehicleID,
					Number: "KA01AB1234",
					Type:   "car",
					Model:  "Swift",
					Owner:  ownerID,
				},
			},
			wantErr: false,
		},
		{
			name: "error: plate already registered",
			fields: fields{
				config:      &config.Config{},
				vehicleRepo: vehiclemocks.NewVehicleRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: ownerID.Hex(),
				req: &model.RegisterVehicleRequest{
					Number: "KA01AB1234",
					Type:   "car",
					Model:  "Swift",
				},
			},
			mockCall: func(f fields) {
				f.vehicleRepo.
					On("Get", mock.Anything, &model.VehicleFilter{Number: "KA01AB1234"}).
					Return(&model.VehicleEntity{
						ID:     vehicleID,
						Number: "KA01AB1234",
						Owner:  primitive.NewObjectID(),
					}, nil).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrVehicleExists,
		},
		{
			name: "error: duplicate key race on create",
			fields: fields{
				config:      &config.Config{},
				vehicleRepo: vehiclemocks.NewVehicleRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: ownerID.Hex(),
				req: &model.RegisterVehicleRequest{
					Number: "KA01AB1234",
					Type:   "car",
					Model:  "Swift",
				},
			},
			mockCall: func(f fields) {
				f.vehicleRepo.
					On("Get", mock.Anything, &model.VehicleFilter{Number: "KA01AB1234"}).
					Return(nil, nil).
					Once()

				f.vehicleRepo.
					On("Create", mock.Anything, mock.AnythingOfType("*model.VehicleEntity")).
					Return(nil, mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrVehicleExists,
		},
		{
			name: "error: repository lookup fails",
			fields: fields{
				config:      &config.Config{},
				vehicleRepo: vehiclemocks.NewVehicleRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: ownerID.Hex(),
				req: &model.RegisterVehicleRequest{
					Number: "KA01AB1234",
					Type:   "car",
					Model:  "Swift",
				},
			},
			mockCall: func(f fields) {
				f.vehicleRepo.
					On("Get", mock.Anything, &model.VehicleFilter{Number: "KA01AB1234"}).
					Return(nil, errors.New("db error")).
					Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInternal,
		},
		{
			name: "error: malformed user id",
			fields: fields{
				config:      &config.Config{},
				vehicleRepo: vehiclemocks.NewVehicleRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: "not-an-object-id",
				req: &model.RegisterVehicleRequest{
					Number: "KA01AB1234",
					Type:   "car",
					Model:  "Swift",
				},
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrUnauthorize,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := appvehicle.NewVehicleApp(tt.fields.config, tt.fields.vehicleRepo)

			got, err := app.Register(tt.args.ctx, tt.args.userID, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Register() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if *got.Vehicle != *tt.want.Vehicle {
				t.Fatalf("Register() = %+v, want %+v", got.Vehicle, tt.want.Vehicle)
			}
		})
	}
}

func TestVehicleApp_List(t *testing.T) {
	ownerID := primitive.NewObjectID()

	t.Run("success: owner's vehicles returned", func(t *testing.T) {
		vehicleRepo := vehiclemocks.NewVehicleRepository(t)
		vehicles := []model.VehicleEntity{
			{ID: primitive.NewObjectID(), Number: "KA01AB1234", Owner: ownerID},
			{ID: primitive.NewObjectID(), Number: "KA05CD5678", Owner: ownerID},
		}
		vehicleRepo.
			On("ListByOwner", mock.Anything, ownerID).
			Return(vehicles, nil).
			Once()

		app := appvehicle.NewVehicleApp(&config.Config{}, vehicleRepo)
		got, err := app.List(context.Background(), ownerID.Hex())
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(got.Vehicles) != 2 {
			t.Fatalf("List() len = %d, want 2", len(got.Vehicles))
		}
	})

	t.Run("error: repository fails", func(t *testing.T) {
		vehicleRepo := vehiclemocks.NewVehicleRepository(t)
		vehicleRepo.
			On("ListByOwner", mock.Anything, ownerID).
			Return(nil, errors.New("db error")).
			Once()

		app := appvehicle.NewVehicleApp(&config.Config{}, vehicleRepo)
		_, err := app.List(context.Background(), ownerID.Hex())

		var ce cerr.CustomError
		if !errors.As(err, &ce) || ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrInternal] {
			t.Fatalf("List() error = %v, want internal", err)
		}
	})
}
