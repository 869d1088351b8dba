package signer

import (
	"testing"

	"github.com/soulgarden/futures-bot/request"
)

const docSecret = "NhqPtmdSJYdKjVHjA7PZj4Mge3R5YNiP1e3UZjInClVN65XAbvqqM6A7H5fATj0j"

func docParams() *request.Params {
	p := request.NewParams()
	p.Set("symbol", "LTCBTC")
	p.Set("side", "BUY")
	p.Set("type", "LIMIT")
	p.Set("timeInForce", "GTC")
	p.Set("quantity", "1")
	p.Set("price", "0.1")
	p.Set("recvWindow", "5000")
	p.Set("timestamp", "1499827319559")

	return p
}

func TestSignParams_KnownVector(t *testing.T) {
	t.Parallel()

	want := "c8db56825ae71d6d79447849e617115f4a920fa2acdcab2b053c4b2838bd6b71"

	if got := SignParams(docParams(), docSecret); got != want {
		t.Errorf("SignParams() = %s, want %s", got, want)
	}
}

func TestSignParams_Deterministic(t *testing.T) {
	t.Parallel()

	a := SignParams(docParams(), docSecret)
	b := SignParams(docParams(), docSecret)

	if a != b {
		t.Fatalf("same input signed differently: %s vs %s", a, b)
	}

	if len(a) != 64 {
		t.Errorf("digest length = %d, want 64", len(a))
	}

	perturbed := docParams()
	perturbed.Set("quantity", "2")

	if SignParams(perturbed, docSecret) == a {
		t.Error("changing a value did not change the digest")
	}

	if SignParams(docParams(), docSecret+"x") == a {
		t.Error("changing the secret did not change the digest")
	}

	reordered := request.NewParams()
	for _, k := range []string{"side", "symbol", "type", "timeInForce", "quantity", "price", "recvWindow", "timestamp"} {
		v, _ := docParams().Get(k)
		reordered.Set(k, v)
	}

	if SignParams(reordered, docSecret) == a {
		t.Error("changing the order did not change the digest")
	}
}

func BenchmarkSignParams(b *testing.B) {
	p := docParams()

	for i := 0; i < b.N; i++ {
		_ = SignParams(p, docSecret)
	}
}
