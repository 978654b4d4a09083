package importer

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"product-console/internal/api"
	"product-console/internal/model"
)

type stubCreator struct {
	failIDs map[float64]bool
	created []model.Product
}

func (s *stubCreator) CreateProduct(ctx context.Context, p model.Product) (json.RawMessage, error) {
	if s.failIDs[p.ID] {
		return nil, &api.StatusError{Op: "create_product", StatusCode: 409}
	}
	s.created = append(s.created, p)
	return json.RawMessage(`{}`), nil
}

const sampleCSV = `id,NAME,Category,price,Stock,Extra
1,Widget,Tools,9.5,3,x
abc,Bad,Tools,1,1,x
2,Gadget,,,,
0,Zero,Tools,1,1,x
3,Gizmo,Toys,4,oops,x
`

func TestParse(t *testing.T) {
	rows, err := Parse(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(rows))
	}
	want := Row{Line: 2, ID: "1", Name: "Widget", Category: "Tools", Price: "9.5", Stock: "3"}
	if rows[0] != want {
		t.Errorf("expected %+v, got %+v", want, rows[0])
	}
	if rows[4].Line != 6 {
		t.Errorf("expected last row on line 6, got %d", rows[4].Line)
	}
}

func TestParseMissingIDColumn(t *testing.T) {
	for _, input := range []string{"", "Name,Price\nA,1\n"} {
		if _, err := Parse(strings.NewReader(input)); !errors.Is(err, ErrMissingIDColumn) {
			t.Errorf("input %q: expected ErrMissingIDColumn, got %v", input, err)
		}
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.csv")
	if err := os.WriteFile(path, []byte("ID,Name\n7,Seven\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	rows, err := ParseFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 || rows[0].ID != "7" || rows[0].Name != "Seven" {
		t.Errorf("unexpected rows: %+v", rows)
	}

	if _, err := ParseFile(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestImport(t *testing.T) {
	rows, err := Parse(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	creator := &stubCreator{}
	result, err := New(creator, nil).Import(context.Background(), rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Result{Total: 5, Submitted: 3, Skipped: 2}
	if result != want {
		t.Errorf("expected %+v, got %+v", want, result)
	}
	if creator.created[2] != (model.Product{ID: 3, Name: "Gizmo", Category: "Toys", Price: 4}) {
		t.Errorf("expected unparsable stock to become 0, got %+v", creator.created[2])
	}
}

func TestImportStopsOnFailure(t *testing.T) {
	rows := []Row{{Line: 2, ID: "1"}, {Line: 3, ID: "2"}, {Line: 4, ID: "3"}}
	creator := &stubCreator{failIDs: map[float64]bool{2: true}}

	result, err := New(creator, nil).Import(context.Background(), rows)

	var statusErr *api.StatusError
	if !errors.As(err, &statusErr) || !strings.Contains(err.Error(), "line 3") {
		t.Fatalf("expected wrapped status error for line 3, got %v", err)
	}
	if result != (Result{Total: 3, Submitted: 1, Failed: 1}) {
		t.Errorf("unexpected result %+v", result)
	}
}

func TestImportContinueOnError(t *testing.T) {
	rows := []Row{{Line: 2, ID: "1"}, {Line: 3, ID: "2"}, {Line: 4, ID: "3"}}
	creator := &stubCreator{failIDs: map[float64]bool{2: true}}

	imp := New(creator, nil)
	imp.ContinueOnError = true
	result, err := imp.Import(context.Background(), rows)

	if err == nil || !strings.Contains(err.Error(), "line 3") {
		t.Errorf("expected joined error mentioning line 3, got %v", err)
	}
	if result != (Result{Total: 3, Submitted: 2, Failed: 1}) {
		t.Errorf("unexpected result %+v", result)
	}
}

func TestImportHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	creator := &stubCreator{}
	_, err := New(creator, nil).Import(ctx, []Row{{Line: 2, ID: "1"}})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if len(creator.created) != 0 {
		t.Errorf("expected nothing submitted")
	}
}
