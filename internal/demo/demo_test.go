package demo

import (
	"context"
	"testing"

	"github.com/lumina/creatorhub/internal/domain"
	"github.com/lumina/creatorhub/internal/service/deal"
)

func TestNew_SeedsWorkspace(t *testing.T) {
	w := New("demo-user")
	ctx := context.Background()

	c, err := w.Profiles().GetByUser(ctx, "demo-user")
	if err != nil {
		t.Fatalf("GetByUser() error = %v", err)
	}
	if c.DisplayName != "Maya Chen" || c.Followers != 50000 {
		t.Errorf("seed profile = %+v", c)
	}

	deals, total, err := w.Deals().List(ctx, "demo-user", deal.ListFilter{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != 4 || len(deals) != 4 {
		t.Errorf("seed deals = %d/%d, want 4", len(deals), total)
	}

	rates, err := w.Rates().ListByUser(ctx, "demo-user", 10)
	if err != nil {
		t.Fatalf("ListByUser() error = %v", err)
	}
	if len(rates) != 1 {
		t.Errorf("seed rate records = %d, want 1", len(rates))
	}
}

func TestReset_RestoresSeedData(t *testing.T) {
	w := New("demo-user")
	ctx := context.Background()

	d := &domain.Deal{UserID: "demo-user", BrandName: "NewBrand", Stage: domain.DealLead}
	if _, err := w.Deals().Create(ctx, d); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := w.Profiles().UpdateTier(ctx, "demo-user", domain.TierStudio); err != nil {
		t.Fatalf("UpdateTier() error = %v", err)
	}

	w.Reset()

	_, total, err := w.Deals().List(ctx, "demo-user", deal.ListFilter{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != 4 {
		t.Errorf("deals after reset = %d, want 4", total)
	}
	c, _ := w.Profiles().GetByUser(ctx, "demo-user")
	if c.Tier != domain.TierFree {
		t.Errorf("tier after reset = %s, want free", c.Tier)
	}
}

func TestWorkspace_OwnershipIsolation(t *testing.T) {
	w := New("demo-user")
	ctx := context.Background()

	deals, total, err := w.Deals().List(ctx, "someone-else", deal.ListFilter{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != 0 || len(deals) != 0 {
		t.Error("other users should not see demo data")
	}
}

func TestDealStore_Pagination(t *testing.T) {
	w := New("demo-user")
	ctx := context.Background()

	deals, total, err := w.Deals().List(ctx, "demo-user", deal.ListFilter{Limit: 2, Offset: 2})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != 4 {
		t.Errorf("total = %d, want 4", total)
	}
	if len(deals) != 2 {
		t.Errorf("page size = %d, want 2", len(deals))
	}
}
