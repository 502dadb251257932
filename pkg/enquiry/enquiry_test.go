package enquiry_test

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-tarotsite/pkg/enquiry"
)

func newValidator(t *testing.T) *enquiry.Validator {
	t.Helper()

	v, err := enquiry.NewValidator()
	if err != nil {
		t.Fatalf("new validator: %v", err)
	}
	return v
}

func TestFromValues_TrimsFields(t *testing.T) {
	got := enquiry.FromValues(url.Values{
		"name":    {"  Anjali  "},
		"email":   {"anjali@example.com "},
		"message": {"\nHello\n"},
		"extra":   {"ignored"},
	})
	want := enquiry.Enquiry{Name: "Anjali", Email: "anjali@example.com", Message: "Hello"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("enquiry mismatch (-want +got):\n%s", diff)
	}
}

func TestValidator_AcceptsValidEnquiry(t *testing.T) {
	v := newValidator(t)

	err := v.Validate(context.Background(), enquiry.Enquiry{
		Name:    "Karan",
		Email:   "karan@example.com",
		Message: "I would like a 60 minute reading.",
	})
	if err != nil {
		t.Fatalf("expected valid enquiry, got %v", err)
	}
}

func TestValidator_ReportsEveryField(t *testing.T) {
	v := newValidator(t)

	err := v.Validate(context.Background(), enquiry.Enquiry{Email: "not-an-email"})
	var verr *enquiry.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}

	want := map[string][]string{
		"name":    {"Name is required"},
		"email":   {"Email must be a valid email address"},
		"message": {"Message is required"},
	}
	if diff := cmp.Diff(want, verr.Fields); diff != "" {
		t.Fatalf("field errors mismatch (-want +got):\n%s", diff)
	}
	if !strings.HasPrefix(verr.Error(), "enquiry: invalid submission") {
		t.Fatalf("unexpected error text %q", verr.Error())
	}
}

func TestValidator_MaxLength(t *testing.T) {
	v := newValidator(t)

	err := v.Validate(context.Background(), enquiry.Enquiry{
		Name:    strings.Repeat("a", 121),
		Email:   "a@b.co",
		Message: "hi",
	})
	var verr *enquiry.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if diff := cmp.Diff([]string{"Name must be at most 120 characters"}, verr.Fields["name"]); diff != "" {
		t.Fatalf("name errors mismatch (-want +got):\n%s", diff)
	}
}

func TestValidator_CancelledContext(t *testing.T) {
	v := newValidator(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := v.Validate(ctx, enquiry.Enquiry{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestNewValidator_RejectsDocumentsWithoutForm(t *testing.T) {
	if _, err := enquiry.NewValidator(enquiry.WithPath("/missing")); err == nil {
		t.Fatalf("expected error for unknown path")
	}
	if _, err := enquiry.NewValidator(enquiry.WithDocument([]byte("not: [valid"))); err == nil {
		t.Fatalf("expected error for malformed document")
	}
}

func TestDocument_ReturnsCopy(t *testing.T) {
	doc := enquiry.Document()
	if !strings.Contains(string(doc), "submitEnquiry") {
		t.Fatalf("expected embedded document, got %q", doc)
	}
	doc[0] = 'X'
	if enquiry.Document()[0] == 'X' {
		t.Fatalf("expected Document to return a copy")
	}
}

func TestDiscardSubmitter(t *testing.T) {
	var s enquiry.Submitter = enquiry.DiscardSubmitter{}
	if err := s.Submit(context.Background(), enquiry.Enquiry{Name: "x"}); err != nil {
		t.Fatalf("expected discard submit to succeed, got %v", err)
	}

	var got enquiry.Enquiry
	fn := enquiry.SubmitterFunc(func(_ context.Context, e enquiry.Enquiry) error {
		got = e
		return nil
	})
	if err := fn.Submit(context.Background(), enquiry.Enquiry{Name: "Priya"}); err != nil || got.Name != "Priya" {
		t.Fatalf("expected func submitter to receive enquiry, got %+v, %v", got, err)
	}
}
