package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/glabrego/storefront-cli/internal/catalog"
)

type fakeClient struct {
	products []catalog.Product
	err      error
	calls    int
}

func (f *fakeClient) ListProducts(context.Context) ([]catalog.Product, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.products, nil
}

func TestService_Load_ReturnsProducts(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	client := &fakeClient{products: []catalog.Product{
		{ID: 1, Title: "Shirt", Images: catalog.NewImageField("https://x/1.jpg")},
		{ID: 2, Title: "Mug"},
	}}

	svc := NewService(client, zap.New(core))
	products, err := svc.Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(products) != 2 || client.calls != 1 {
		t.Fatalf("unexpected result: %d products after %d calls", len(products), client.calls)
	}

	entries := logs.FilterMessage("catalog loaded").All()
	if len(entries) != 1 {
		t.Fatalf("expected one load log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["products"] != int64(2) || fields["without_images"] != int64(1) {
		t.Fatalf("unexpected log fields: %+v", fields)
	}
}

func TestService_Load_WrapsAndLogsError(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	client := &fakeClient{err: &catalog.StatusError{Code: 500}}

	products, err := NewService(client, zap.New(core)).Load(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if products != nil {
		t.Fatalf("expected no products, got %+v", products)
	}
	if !strings.Contains(err.Error(), "fetch products from catalog") {
		t.Fatalf("unexpected error: %v", err)
	}
	var statusErr *catalog.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected wrapped StatusError, got %v", err)
	}
	if logs.FilterMessage("catalog load failed").Len() != 1 {
		t.Fatal("expected failure to be logged")
	}
}

func TestNewService_NilLogger(t *testing.T) {
	svc := NewService(&fakeClient{}, nil)
	if _, err := svc.Load(context.Background()); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
}
