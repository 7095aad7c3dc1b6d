package wheel

import (
	"errors"
	"testing"

	"github.com/lucasr0ck/leadflow2-sub000/internal/domain"
)

func seller(id string, weight int, phones ...string) domain.Seller {
	s := domain.Seller{ID: id, Name: "seller " + id, Weight: weight}
	for i, p := range phones {
		s.Contacts = append(s.Contacts, domain.Contact{ID: id + "-c" + string(rune('0'+i)), SellerID: id, Phone: p})
	}
	return s
}

func TestBuild_ExpandsWeightsContiguously(t *testing.T) {
	w, err := Build([]domain.Seller{
		seller("a", 2, "111"),
		seller("b", 1, "222"),
		seller("c", 3, "333"),
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if w.Len() != 6 {
		t.Fatalf("Len = %d, want 6", w.Len())
	}
	want := []string{"a", "a", "b", "c", "c", "c"}
	for i, id := range want {
		if got := w.SellerAt(int64(i)).ID; got != id {
			t.Errorf("slot %d = %s, want %s", i, got, id)
		}
	}
}

func TestBuild_ExcludesZeroWeightAndContactless(t *testing.T) {
	w, err := Build([]domain.Seller{
		seller("paused", 0, "111"),
		seller("empty", 5), // no contacts
		seller("ok", 1, "222"),
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if w.Len() != 1 {
		t.Fatalf("Len = %d, want 1", w.Len())
	}
	// Whatever the count, only the eligible seller can come out.
	for _, n := range []int64{0, 1, 7, 1_000_003} {
		if got := w.SellerAt(n).ID; got != "ok" {
			t.Errorf("SellerAt(%d) = %s, want ok", n, got)
		}
	}
}

func TestBuild_NoEligibleSellers(t *testing.T) {
	cases := map[string][]domain.Seller{
		"nil input":     nil,
		"empty input":   {},
		"all weight 0":  {seller("a", 0, "111"), seller("b", 0, "222")},
		"all contactless": {seller("a", 3), seller("b", 1)},
	}
	for name, in := range cases {
		if _, err := Build(in); !errors.Is(err, ErrNoEligibleSellers) {
			t.Errorf("%s: Build err = %v, want ErrNoEligibleSellers", name, err)
		}
	}
}

func TestSellerAt_Deterministic(t *testing.T) {
	in := []domain.Seller{seller("a", 2, "111"), seller("b", 3, "222")}
	w1, err := Build(in)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	w2, _ := Build(in)
	for n := int64(0); n < 50; n++ {
		if w1.SellerAt(n).ID != w2.SellerAt(n).ID {
			t.Fatalf("SellerAt(%d) differs between identical wheels", n)
		}
		if w1.SellerAt(n).ID != w1.SellerAt(n).ID {
			t.Fatalf("SellerAt(%d) not stable on repeat call", n)
		}
	}
}

func TestWeightProportionality_Serialized(t *testing.T) {
	weights := map[string]int{"a": 1, "b": 2, "c": 5}
	w, err := Build([]domain.Seller{
		seller("a", weights["a"], "1"),
		seller("b", weights["b"], "2"),
		seller("c", weights["c"], "3"),
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	// Serialized simulation: each click advances the count by exactly one,
	// so the distribution is exact over any multiple of the total weight.
	const rounds = 125
	total := int64(w.Len()) * rounds
	got := map[string]int64{}
	for n := int64(0); n < total; n++ {
		got[w.SellerAt(n).ID]++
	}
	for id, weight := range weights {
		want := int64(weight) * rounds
		if got[id] != want {
			t.Errorf("seller %s received %d clicks, want exactly %d", id, got[id], want)
		}
	}
}

func TestPickContact_RoundRobin(t *testing.T) {
	contacts := []domain.Contact{
		{ID: "c0", Phone: "111"},
		{ID: "c1", Phone: "222"},
		{ID: "c2", Phone: "333"},
	}
	want := []string{"c0", "c1", "c2", "c0", "c1", "c2", "c0"}
	for n, id := range want {
		if got := PickContact(contacts, int64(n)).ID; got != id {
			t.Errorf("PickContact(%d) = %s, want %s", n, got, id)
		}
	}
}

// The worked example from the product brief: A(weight 2, one contact),
// B(weight 1, two contacts). Wheel is [A A B]; campaign counts 0..5 map to
// A A B A A B, and B's own counts cycle its contacts b1 b2 b1 ...
func TestEndToEndExample(t *testing.T) {
	a := seller("A", 2, "111")
	b := domain.Seller{ID: "B", Name: "seller B", Weight: 1, Contacts: []domain.Contact{
		{ID: "b1", Phone: "221"},
		{ID: "b2", Phone: "222"},
	}}
	w, err := Build([]domain.Seller{a, b})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if w.Len() != 3 {
		t.Fatalf("Len = %d, want 3", w.Len())
	}

	wantSellers := []string{"A", "A", "B", "A", "A", "B"}
	for n, id := range wantSellers {
		if got := w.SellerAt(int64(n)).ID; got != id {
			t.Errorf("click %d routed to %s, want %s", n, got, id)
		}
	}

	wantContacts := []string{"b1", "b2", "b1", "b2"}
	for n, id := range wantContacts {
		if got := PickContact(b.Contacts, int64(n)).ID; got != id {
			t.Errorf("B's click %d routed to contact %s, want %s", n, got, id)
		}
	}
}
