package simon

import "testing"

func TestFrontRunMatchesKAT(t *testing.T) {
	f, err := NewFront(32, 4)
	if err != nil {
		t.Fatal(err)
	}
	kat := engineKATs[3]
	resp, err := f.Run(Request{Direction: Encrypt, Key: kat.key, Text: kat.pt})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Text != kat.ct {
		t.Fatalf("Run = %#x, want %#x", resp.Text, kat.ct)
	}
	if !f.Ready() {
		t.Fatal("front not ready after Collect")
	}
}

func TestFrontTicketContract(t *testing.T) {
	f, _ := NewFront(16, 4)
	kat := engineKATs[0]
	req := Request{Direction: Encrypt, Key: kat.key, Text: kat.pt}

	tk, err := f.Submit(req)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Submit(req); err != ErrBusy {
		t.Fatalf("second Submit: err = %v, want ErrBusy", err)
	}
	if _, err := f.Collect(tk); err != ErrNotReady {
		t.Fatalf("early Collect: err = %v, want ErrNotReady", err)
	}
	for !f.Done() {
		f.Step()
	}
	if _, err := f.Collect(Ticket{}); err != ErrBadTicket {
		t.Fatalf("zero ticket: err = %v, want ErrBadTicket", err)
	}
	resp, err := f.Collect(tk)
	if err != nil {
		t.Fatal(err)
	}
	if resp.Text != kat.ct {
		t.Fatalf("Collect = %#x, want %#x", resp.Text, kat.ct)
	}
	// the ticket is spent
	if _, err := f.Collect(tk); err != ErrBadTicket {
		t.Fatalf("spent ticket: err = %v, want ErrBadTicket", err)
	}
	// a fresh operation gets a fresh ticket
	tk2, err := f.Submit(req)
	if err != nil {
		t.Fatal(err)
	}
	if tk2 == tk {
		t.Fatal("tickets must not repeat")
	}
}

func TestFrontConfigurationFailure(t *testing.T) {
	if _, err := NewFront(24, 4); err == nil {
		t.Fatal("unverified configuration must fail at construction")
	}
	if _, err := NewFront(40, 2); err == nil {
		t.Fatal("unknown configuration must fail at construction")
	}
}
