package usecase

import (
	"context"
	"errors"
	"testing"

	"dealer_backoffice/internal/domain/entities"
	"dealer_backoffice/internal/domain/envelope"
	"dealer_backoffice/internal/usecase/interfaces"
	mock_interfaces "dealer_backoffice/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type inventoryMocks struct {
	vehicles  *mock_interfaces.MockIVehicleRepository
	costs     *mock_interfaces.MockICostRepository
	purchases *mock_interfaces.MockIPurchaseRepository
	warranty  *mock_interfaces.MockIWarrantyRepository
	webhooks  *mock_interfaces.MockIWebhookClient
}

func newInventoryUseCaseForTest(ctrl *gomock.Controller) (*InventoryUseCase, inventoryMocks) {
	m := inventoryMocks{
		vehicles:  mock_interfaces.NewMockIVehicleRepository(ctrl),
		costs:     mock_interfaces.NewMockICostRepository(ctrl),
		purchases: mock_interfaces.NewMockIPurchaseRepository(ctrl),
		warranty:  mock_interfaces.NewMockIWarrantyRepository(ctrl),
		webhooks:  mock_interfaces.NewMockIWebhookClient(ctrl),
	}
	return NewInventoryUseCase(m.vehicles, m.costs, m.purchases, m.warranty, m.webhooks), m
}

func TestInventoryUseCase_CreateVehicle(t *testing.T) {
	t.Run("invalid vin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newInventoryUseCaseForTest(ctrl)

		_, err := uc.CreateVehicle(context.Background(), entities.Vehicle{StockNumber: "S1", VIN: "1HGCM82633A00435O"})
		if !errors.Is(err, ErrInvalidVIN) {
			t.Fatalf("expected ErrInvalidVIN, got %v", err)
		}
	})

	t.Run("duplicate stock number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newInventoryUseCaseForTest(ctrl)

		m.vehicles.EXPECT().GetByStockNumber(gomock.Any(), "S1").Return(entities.Vehicle{ID: 1, StockNumber: "S1"}, nil)

		_, err := uc.CreateVehicle(context.Background(), entities.Vehicle{StockNumber: "S1"})
		if !errors.Is(err, ErrVehicleAlreadyExists) {
			t.Fatalf("expected ErrVehicleAlreadyExists, got %v", err)
		}
	})

	t.Run("normalizes vin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newInventoryUseCaseForTest(ctrl)

		m.vehicles.EXPECT().GetByStockNumber(gomock.Any(), "S1").Return(entities.Vehicle{}, nil)
		m.vehicles.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, v entities.Vehicle) (entities.Vehicle, error) {
			if v.VIN != "1HGCM82633A004352" {
				t.Fatalf("expected upper-cased vin, got %q", v.VIN)
			}
			v.ID = 10
			return v, nil
		})

		got, err := uc.CreateVehicle(context.Background(), entities.Vehicle{StockNumber: " S1 ", VIN: "1hgcm82633a004352"})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.ID != 10 {
			t.Fatalf("expected id 10, got %d", got.ID)
		}
	})
}

func TestInventoryUseCase_SearchVehicles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newInventoryUseCaseForTest(ctrl)

	got, err := uc.SearchVehicles(context.Background(), "  ", 0)
	if err != nil || len(got) != 0 {
		t.Fatalf("expected empty result for blank query, got %v %v", got, err)
	}

	m.vehicles.EXPECT().Search(gomock.Any(), "hon", defaultSearchLimit).Return([]entities.Vehicle{{ID: 1}}, nil)
	got, err = uc.SearchVehicles(context.Background(), "hon", 0)
	if err != nil || len(got) != 1 {
		t.Fatalf("unexpected result %v %v", got, err)
	}
}

func TestInventoryUseCase_UpdateVehicleNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newInventoryUseCaseForTest(ctrl)

	m.vehicles.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Vehicle{}, nil)

	_, err := uc.UpdateVehicle(context.Background(), entities.Vehicle{StockNumber: "S9"})
	if !errors.Is(err, ErrVehicleNotFound) {
		t.Fatalf("expected ErrVehicleNotFound, got %v", err)
	}
}

func TestInventoryUseCase_AddCost(t *testing.T) {
	t.Run("invalid cost", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newInventoryUseCaseForTest(ctrl)

		_, err := uc.AddCost(context.Background(), entities.CostLine{StockNumber: "S1", Description: "tires", Amount: 0})
		if !errors.Is(err, ErrInvalidCost) {
			t.Fatalf("expected ErrInvalidCost, got %v", err)
		}
	})

	t.Run("posts to webhook and reads back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newInventoryUseCaseForTest(ctrl)

		m.vehicles.EXPECT().GetByStockNumber(gomock.Any(), "S1").Return(entities.Vehicle{ID: 1, StockNumber: "S1"}, nil)
		m.webhooks.EXPECT().Save(gomock.Any(), interfaces.WebhookCost, gomock.Any()).Return(envelope.Ack{Legacy: true}, nil)
		m.costs.EXPECT().ListByStockNumber(gomock.Any(), "S1").Return([]entities.CostLine{{ID: 1, Description: "tires", Amount: 800}}, nil)

		got, err := uc.AddCost(context.Background(), entities.CostLine{StockNumber: "S1", Description: "tires", Amount: 800})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("expected 1 cost line, got %d", len(got))
		}
	})

	t.Run("webhook rejection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newInventoryUseCaseForTest(ctrl)

		m.vehicles.EXPECT().GetByStockNumber(gomock.Any(), "S1").Return(entities.Vehicle{ID: 1, StockNumber: "S1"}, nil)
		m.webhooks.EXPECT().Save(gomock.Any(), interfaces.WebhookCost, gomock.Any()).Return(envelope.Ack{}, envelope.ErrWebhookRejected)

		_, err := uc.AddCost(context.Background(), entities.CostLine{StockNumber: "S1", Description: "tires", Amount: 800})
		if !errors.Is(err, envelope.ErrWebhookRejected) {
			t.Fatalf("expected ErrWebhookRejected, got %v", err)
		}
	})
}

func TestInventoryUseCase_SavePurchase_FallsBackToSubmitted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newInventoryUseCaseForTest(ctrl)

	m.vehicles.EXPECT().GetByStockNumber(gomock.Any(), "S1").Return(entities.Vehicle{ID: 1, StockNumber: "S1"}, nil)
	m.webhooks.EXPECT().Save(gomock.Any(), interfaces.WebhookPurchase, gomock.Any()).Return(envelope.Ack{Legacy: true}, nil)
	m.purchases.EXPECT().GetByStockNumber(gomock.Any(), "S1").Return(entities.PurchaseRecord{}, nil)

	got, err := uc.SavePurchase(context.Background(), entities.PurchaseRecord{StockNumber: "S1", PurchasedFrom: "Auction"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.PurchasedFrom != "Auction" {
		t.Fatalf("expected submitted record, got %+v", got)
	}
}

func TestInventoryUseCase_GetWarrantyNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc, m := newInventoryUseCaseForTest(ctrl)

	m.warranty.EXPECT().GetByStockNumber(gomock.Any(), "S1").Return(entities.WarrantyRecord{}, nil)

	_, err := uc.GetWarranty(context.Background(), "S1")
	if !errors.Is(err, ErrWarrantyNotFound) {
		t.Fatalf("expected ErrWarrantyNotFound, got %v", err)
	}
}

func TestInventoryUseCase_DecodeVIN(t *testing.T) {
	const vin = "1HGCM82633A004352"

	t.Run("invalid vin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _ := newInventoryUseCaseForTest(ctrl)

		for _, bad := range []string{"", "SHORT", "1HGCM82633A00435I"} {
			if _, err := uc.DecodeVIN(context.Background(), bad); !errors.Is(err, ErrInvalidVIN) {
				t.Fatalf("DecodeVIN(%q): expected ErrInvalidVIN, got %v", bad, err)
			}
		}
	})

	t.Run("maps loosely keyed fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newInventoryUseCaseForTest(ctrl)

		m.webhooks.EXPECT().Fetch(gomock.Any(), interfaces.WebhookVIN, map[string]string{"vin": vin}).Return(envelope.Resolved{
			Payload: map[string]interface{}{
				"ModelYear":         "2003",
				"Make":              "HONDA",
				"model":             "Accord",
				"series":            "EX",
				"BodyClass":         "Coupe",
				"drive_type":        "FWD",
				"FuelTypePrimary":   "Gasoline",
				"TransmissionStyle": "Automatic",
			},
		}, nil)

		got, err := uc.DecodeVIN(context.Background(), " 1hgcm82633a004352 ")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		want := entities.VehicleSpec{
			VIN: vin, Year: 2003, Make: "HONDA", Model: "Accord", Trim: "EX", BodyStyle: "Coupe",
			Drivetrain: "FWD", Fuel: "Gasoline", Transmission: "Automatic",
		}
		if got != want {
			t.Fatalf("expected %+v, got %+v", want, got)
		}
	})

	t.Run("body class alias", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newInventoryUseCaseForTest(ctrl)

		m.webhooks.EXPECT().Fetch(gomock.Any(), interfaces.WebhookVIN, gomock.Any()).Return(envelope.Resolved{
			Payload: map[string]interface{}{"make": "Honda", "body_class": "Sedan"},
		}, nil)

		got, err := uc.DecodeVIN(context.Background(), vin)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.BodyStyle != "Sedan" {
			t.Fatalf("expected body style Sedan, got %q", got.BodyStyle)
		}
	})

	cases := []struct {
		name string
		res  envelope.Resolved
		err  error
		want error
	}{
		{name: "empty envelope", err: envelope.ErrEmptyEnvelope, want: ErrDecodeNoData},
		{name: "bad shape", err: envelope.ErrUnrecognizedEnvelope, want: ErrDecodeBadShape},
		{name: "no usable fields", res: envelope.Resolved{Payload: map[string]interface{}{"ErrorCode": "11"}}, want: ErrDecodeNoData},
		{name: "webhook down", err: interfaces.ErrWebhookUnavailable, want: interfaces.ErrWebhookUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc, m := newInventoryUseCaseForTest(ctrl)

			m.webhooks.EXPECT().Fetch(gomock.Any(), interfaces.WebhookVIN, gomock.Any()).Return(tc.res, tc.err)

			_, err := uc.DecodeVIN(context.Background(), vin)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}
