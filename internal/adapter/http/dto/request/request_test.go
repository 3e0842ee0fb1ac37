package request

import (
	"encoding/json"
	"testing"

	"plaiz_studio/internal/domain/entities"
)

func TestProjectRequest_ToInput(t *testing.T) {
	in := ProjectRequest{
		Title:         "  Brand kit ",
		Category:      " Printing",
		PrintItem:     "flyers ",
		PrintQuantity: 500,
	}.ToInput()

	if in.Title != "Brand kit" || in.Category != entities.ServiceCategoryPrinting {
		t.Fatalf("unexpected input: %+v", in)
	}
	if in.PrintItem != "flyers" || in.PrintQuantity != 500 {
		t.Fatalf("unexpected print fields: %+v", in)
	}
}

func TestProposePriceRequest_ConvertsNairaToKobo(t *testing.T) {
	in := ProposePriceRequest{Amount: 50000.5, Deliverables: " logo "}.ToInput()
	if in.Amount != 5_000_050 {
		t.Fatalf("expected 5000050 kobo, got %d", in.Amount)
	}
	if in.Deliverables != "logo" {
		t.Fatalf("unexpected deliverables: %q", in.Deliverables)
	}
}

func TestPaymentRequests_ToInput(t *testing.T) {
	rec := RecordPaymentRequest{Phase: "deposit_40", Amount: 20000, Status: " Paid "}.ToInput()
	if rec.Phase != entities.PaymentPhaseDeposit || rec.Amount != 2_000_000 || rec.Status != "paid" {
		t.Fatalf("unexpected record input: %+v", rec)
	}

	co := CheckoutRequest{Phase: "balance_60", Amount: 30000, MPPayload: json.RawMessage(`{"payment_method_id":"pix"}`)}.ToInput()
	if co.Phase != entities.PaymentPhaseBalance || co.Amount != 3_000_000 {
		t.Fatalf("unexpected checkout input: %+v", co)
	}
	if string(co.ProviderPayload) != `{"payment_method_id":"pix"}` {
		t.Fatalf("payload not forwarded: %s", co.ProviderPayload)
	}
}

func TestBankAccountRequest_StripsSpaces(t *testing.T) {
	in := BankAccountRequest{BankName: "GTBank", AccountNumber: " 0123 456 789", AccountName: "Ada"}.ToInput()
	if in.AccountNumber != "0123456789" {
		t.Fatalf("unexpected account number: %q", in.AccountNumber)
	}
}

func TestFlagValueRequest_Resolve(t *testing.T) {
	f := false
	if !(FlagValueRequest{}).Resolve() {
		t.Fatalf("missing value should mean true")
	}
	if (FlagValueRequest{Value: &f}).Resolve() {
		t.Fatalf("explicit false should be kept")
	}
}
