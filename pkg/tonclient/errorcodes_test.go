package tonclient

import "testing"

func TestErrorCodeFamily(t *testing.T) {
	tests := map[ErrorCode]ErrorFamily{
		1:    FamilyGeneric,
		3:    FamilyGeneric,
		1003: FamilyNode,
		2015: FamilyCrypto,
		3025: FamilyContracts,
		4004: FamilyQueries,
		5000: FamilyWallet,
		0:    FamilyUnknown,
		9000: FamilyUnknown,
	}
	for code, want := range tests {
		if got := code.Family(); got != want {
			t.Errorf("ErrorCode(%d).Family() = %q, want %q", int(code), got, want)
		}
	}
}

func TestErrorCodeDescribe(t *testing.T) {
	if ErrorCode(3).Describe() == "" {
		t.Fatal("code 3 must be documented")
	}
	if ErrorCode(777).Describe() != "" {
		t.Fatal("code 777 must be undocumented")
	}
	if got, want := ErrorCode(777).String(), "777 (generic)"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestParseNativeError(t *testing.T) {
	ne, err := ParseNativeError(`{"source":"node","code":1003,"message":"timeout","data":{"retries":3}}`)
	if err != nil {
		t.Fatal(err)
	}
	if ne.Source != "node" || ne.Code != 1003 || ne.Message != "timeout" {
		t.Fatalf("unexpected decode: %+v", ne)
	}
	if string(ne.Data) != `{"retries":3}` {
		t.Fatalf("data = %s", ne.Data)
	}
	if got, want := ne.Error(), "node error 1003: timeout"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	if _, err := ParseNativeError("not json"); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestPayloadErr(t *testing.T) {
	if err := (Payload{Result: "{}"}).Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := Payload{Error: `{"code":2001,"message":"bad key"}`}.Err()
	ne, ok := err.(*NativeError)
	if !ok || ne.Code != 2001 {
		t.Fatalf("got %v", err)
	}
	if err := (Payload{Error: "garbage"}).Err(); err == nil {
		t.Fatal("expected error for undecodable error text")
	}
}
