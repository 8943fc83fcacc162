package income

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pocket-ledger/ledger/internal/application/adapter"
	"github.com/pocket-ledger/ledger/internal/domain/entity"
	domainerror "github.com/pocket-ledger/ledger/internal/domain/error"
	"github.com/pocket-ledger/ledger/internal/integration/persistence"
)

type fixture struct {
	incomeRepo adapter.IncomeRepository
	marker     adapter.UpdateMarker
	clock      adapter.Clock
	now        time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := persistence.NewMemoryStore()
	now := time.Date(2024, time.March, 8, 12, 0, 0, 0, time.UTC)
	return &fixture{
		incomeRepo: persistence.NewIncomeRepository(store),
		marker:     persistence.NewUpdateMarker(store),
		clock:      adapter.ClockFunc(func() time.Time { return now }),
		now:        now,
	}
}

func intPtr(v int) *int { return &v }

func TestCreateIncomeUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("fixed income", func(t *testing.T) {
		f := newFixture(t)
		uc := NewCreateIncomeUseCase(f.incomeRepo, f.marker, f.clock)

		out, err := uc.Execute(ctx, CreateIncomeInput{
			Name:  "salary",
			Value: 5000,
			Type:  entity.IncomeTypeFixed,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Income.ID == "" {
			t.Error("expected a generated id")
		}
		if out.Income.Status != entity.RecordStatusActive {
			t.Errorf("status = %q, want active", out.Income.Status)
		}
		if !out.Income.CreatedAt.Equal(f.now) {
			t.Errorf("CreatedAt = %v, want %v", out.Income.CreatedAt, f.now)
		}
		if out.Income.Month != nil || out.Income.Year != nil {
			t.Error("fixed income must not carry month/year")
		}

		stored, _ := f.incomeRepo.Load(ctx)
		if len(stored) != 1 {
			t.Errorf("stored %d records, want 1", len(stored))
		}
	})

	t.Run("one-time income keeps its zero-based month", func(t *testing.T) {
		f := newFixture(t)
		uc := NewCreateIncomeUseCase(f.incomeRepo, f.marker, f.clock)

		out, err := uc.Execute(ctx, CreateIncomeInput{
			Name:  "refund",
			Value: 320,
			Type:  entity.IncomeTypeOneTime,
			Month: intPtr(4),
			Year:  intPtr(2024),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Income.Month == nil || *out.Income.Month != 4 {
			t.Errorf("Month = %v, want 4", out.Income.Month)
		}
		if out.Income.Year == nil || *out.Income.Year != 2024 {
			t.Errorf("Year = %v, want 2024", out.Income.Year)
		}
	})

	t.Run("zero-value fixed income is allowed", func(t *testing.T) {
		f := newFixture(t)
		uc := NewCreateIncomeUseCase(f.incomeRepo, f.marker, f.clock)

		if _, err := uc.Execute(ctx, CreateIncomeInput{Name: "placeholder", Value: 0, Type: entity.IncomeTypeFixed}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("mutation touches the last-update marker", func(t *testing.T) {
		f := newFixture(t)
		uc := NewCreateIncomeUseCase(f.incomeRepo, f.marker, f.clock)

		if _, err := uc.Execute(ctx, CreateIncomeInput{Name: "salary", Value: 5000, Type: entity.IncomeTypeFixed}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		last, err := f.marker.Last(ctx)
		if err != nil {
			t.Fatalf("failed to read marker: %v", err)
		}
		if last == nil || !last.Equal(f.now) {
			t.Errorf("marker = %v, want %v", last, f.now)
		}
	})

	t.Run("validation", func(t *testing.T) {
		f := newFixture(t)
		uc := NewCreateIncomeUseCase(f.incomeRepo, f.marker, f.clock)

		cases := []struct {
			name  string
			input CreateIncomeInput
			want  error
		}{
			{
				name:  "empty name",
				input: CreateIncomeInput{Name: "  ", Value: 10, Type: entity.IncomeTypeFixed},
				want:  domainerror.ErrIncomeNameRequired,
			},
			{
				name:  "negative fixed value",
				input: CreateIncomeInput{Name: "x", Value: -1, Type: entity.IncomeTypeFixed},
				want:  domainerror.ErrInvalidIncomeValue,
			},
			{
				name:  "zero one-time value",
				input: CreateIncomeInput{Name: "x", Value: 0, Type: entity.IncomeTypeOneTime, Month: intPtr(4), Year: intPtr(2024)},
				want:  domainerror.ErrInvalidIncomeValue,
			},
			{
				name:  "missing month",
				input: CreateIncomeInput{Name: "x", Value: 10, Type: entity.IncomeTypeOneTime, Year: intPtr(2024)},
				want:  domainerror.ErrInvalidIncomeMonth,
			},
			{
				name:  "month out of range",
				input: CreateIncomeInput{Name: "x", Value: 10, Type: entity.IncomeTypeOneTime, Month: intPtr(12), Year: intPtr(2024)},
				want:  domainerror.ErrInvalidIncomeMonth,
			},
			{
				name:  "year out of range",
				input: CreateIncomeInput{Name: "x", Value: 10, Type: entity.IncomeTypeOneTime, Month: intPtr(4), Year: intPtr(1800)},
				want:  domainerror.ErrInvalidIncomeYear,
			},
			{
				name:  "unknown type",
				input: CreateIncomeInput{Name: "x", Value: 10, Type: "Weekly"},
				want:  domainerror.ErrInvalidIncomeType,
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				if _, err := uc.Execute(ctx, tc.input); !errors.Is(err, tc.want) {
					t.Errorf("error = %v, want %v", err, tc.want)
				}
			})
		}
	})
}
