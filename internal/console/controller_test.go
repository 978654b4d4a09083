package console

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"product-console/internal/model"
)

type fakeAPI struct {
	products  []model.Product
	listErr   error
	createErr error

	listCalls int
	created   []model.Product
}

func (f *fakeAPI) ListProducts(ctx context.Context) ([]model.Product, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.products, nil
}

func (f *fakeAPI) CreateProduct(ctx context.Context, p model.Product) (json.RawMessage, error) {
	f.created = append(f.created, p)
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.products = append(f.products, p)
	return json.RawMessage(`{}`), nil
}

func TestLoadRendersOneViewPerRecord(t *testing.T) {
	api := &fakeAPI{products: []model.Product{{ID: 1, Name: "A"}, {ID: 2}, {ID: 3, Price: 2.5, Stock: 9}}}
	c := NewController(api, nil)

	c.Load(context.Background())
	v := c.View()

	if len(v.Products) != 3 {
		t.Fatalf("expected 3 product views, got %d", len(v.Products))
	}
	if v.Placeholder != "" {
		t.Errorf("expected no placeholder, got %q", v.Placeholder)
	}
	for i, want := range []string{"1", "2", "3"} {
		if v.Products[i].ID != want {
			t.Errorf("product %d: expected ID %s, got %s", i, want, v.Products[i].ID)
		}
	}
	if v.Banner != nil {
		t.Errorf("expected no banner, got %+v", v.Banner)
	}
}

func TestLoadEmptyList(t *testing.T) {
	for name, products := range map[string][]model.Product{"nil": nil, "empty": {}} {
		t.Run(name, func(t *testing.T) {
			c := NewController(&fakeAPI{products: products}, nil)
			c.Load(context.Background())
			v := c.View()
			if v.Placeholder != EmptyNoProducts {
				t.Errorf("expected %q, got %q", EmptyNoProducts, v.Placeholder)
			}
			if len(v.Products) != 0 {
				t.Errorf("expected no product views, got %d", len(v.Products))
			}
		})
	}
}

func TestLoadFailureShowsBannerAndPlaceholder(t *testing.T) {
	c := NewController(&fakeAPI{listErr: errors.New("status 503")}, nil)
	c.Load(context.Background())

	v := c.View()
	if v.Banner == nil || v.Banner.Kind != BannerError || v.Banner.Message != MsgLoadFailed {
		t.Fatalf("expected load error banner, got %+v", v.Banner)
	}
	if v.Banner.Transient {
		t.Error("error banner should persist")
	}
	if v.Placeholder != EmptyLoadFailed || len(v.Products) != 0 {
		t.Errorf("expected failed placeholder and no products, got %q / %d", v.Placeholder, len(v.Products))
	}
}

func TestLoadingPlaceholder(t *testing.T) {
	c := NewController(&fakeAPI{}, nil)
	c.ApplyLoad([]model.Product{{ID: 1}}, nil)
	c.StartLoad()

	v := c.View()
	if v.Placeholder != LoadingProducts || len(v.Products) != 0 {
		t.Errorf("expected loading placeholder only, got %q / %d", v.Placeholder, len(v.Products))
	}
}

func TestSubmitBlocksInvalidID(t *testing.T) {
	for _, id := range []string{"0", "abc", ""} {
		t.Run(id, func(t *testing.T) {
			api := &fakeAPI{}
			c := NewController(api, nil)
			c.SetForm(Form{ID: id, Name: "Kept"})

			err := c.Submit(context.Background())
			if !errors.Is(err, ErrInvalidID) {
				t.Fatalf("expected ErrInvalidID, got %v", err)
			}
			if len(api.created) != 0 {
				t.Error("no create request should be sent")
			}
			if b := c.Banner(); b == nil || b.Message != MsgInvalidID {
				t.Errorf("expected validation banner, got %+v", b)
			}
			if c.Form().Name != "Kept" {
				t.Error("form should keep its values after a validation failure")
			}
			if c.Submitting() {
				t.Error("trigger should stay enabled")
			}
		})
	}
}

func TestSubmitSuccessClearsFormAndReloads(t *testing.T) {
	api := &fakeAPI{}
	c := NewController(api, nil)
	c.Load(context.Background())
	c.SetForm(Form{ID: "5", Name: "Mug", Category: "Kitchen", Price: "7.5", Stock: "12"})

	if err := c.Submit(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := model.Product{ID: 5, Name: "Mug", Category: "Kitchen", Price: 7.5, Stock: 12}
	if len(api.created) != 1 || api.created[0] != want {
		t.Fatalf("expected %+v to be created, got %+v", want, api.created)
	}
	if c.Form() != (Form{}) {
		t.Errorf("expected cleared form, got %+v", c.Form())
	}
	if api.listCalls != 2 {
		t.Errorf("expected the list to be re-fetched, got %d list calls", api.listCalls)
	}
	b := c.Banner()
	if b == nil || b.Kind != BannerSuccess || !b.Transient {
		t.Errorf("expected transient success banner, got %+v", b)
	}
	if v := c.View(); len(v.Products) != 1 || v.BannerTTL != SuccessBannerTTL {
		t.Errorf("expected reloaded list and banner ttl, got %+v", v)
	}
}

func TestSubmitSuccessThenReloadFailure(t *testing.T) {
	api := &fakeAPI{}
	c := NewController(api, nil)
	c.SetForm(Form{ID: "5"})
	api.listErr = errors.New("down")

	if err := c.Submit(context.Background()); err != nil {
		t.Fatalf("create succeeded, expected nil error, got %v", err)
	}
	if b := c.Banner(); b == nil || b.Message != MsgLoadFailed {
		t.Errorf("expected reload failure to replace the success banner, got %+v", b)
	}
}

func TestSubmitFailureReenablesTrigger(t *testing.T) {
	api := &fakeAPI{createErr: errors.New("HTTP error! status: 500")}
	c := NewController(api, nil)
	c.SetForm(Form{ID: "9", Name: "Chair"})

	if err := c.Submit(context.Background()); err == nil {
		t.Fatal("expected create error")
	}
	if c.Submitting() || c.SubmitLabel() != SubmitLabel {
		t.Errorf("expected enabled trigger labelled %q, got %v %q", SubmitLabel, c.Submitting(), c.SubmitLabel())
	}
	if b := c.Banner(); b == nil || b.Message != MsgAddFailed || b.Transient {
		t.Errorf("expected persistent failure banner, got %+v", b)
	}
	if c.Form().Name != "Chair" {
		t.Error("form should keep its values after a failed create")
	}
	if api.listCalls != 0 {
		t.Error("list should not be reloaded after a failed create")
	}
}

func TestBeginSubmitWhileInFlight(t *testing.T) {
	c := NewController(&fakeAPI{}, nil)
	c.SetForm(Form{ID: "1"})

	if _, err := c.BeginSubmit(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.SubmitLabel() != SubmittingLabel {
		t.Errorf("expected %q while in flight, got %q", SubmittingLabel, c.SubmitLabel())
	}
	if _, err := c.BeginSubmit(); !errors.Is(err, ErrSubmitInFlight) {
		t.Errorf("expected ErrSubmitInFlight, got %v", err)
	}
}

func TestExpireBannerOnlyRemovesMatchingTransient(t *testing.T) {
	c := NewController(&fakeAPI{}, nil)
	c.SetForm(Form{ID: "1"})
	c.BeginSubmit()
	c.CompleteSubmit(nil)
	success := c.Banner().Seq

	c.SetForm(Form{ID: "x"})
	c.BeginSubmit()
	c.ExpireBanner(success)
	if b := c.Banner(); b == nil || b.Message != MsgInvalidID {
		t.Fatalf("late expiry must not clear a newer banner, got %+v", b)
	}

	c.SetForm(Form{ID: "2"})
	c.BeginSubmit()
	c.CompleteSubmit(nil)
	c.ExpireBanner(c.Banner().Seq)
	if c.Banner() != nil {
		t.Error("expected transient banner to expire")
	}
}
