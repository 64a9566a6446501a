package tonclient

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// ErrorCode is a numeric code reported by the native engine inside error
// JSON. The bridge never acts on these; the table is for callers.
type ErrorCode int

// ErrorFamily groups codes by the concern that raised them.
type ErrorFamily string

const (
	FamilyGeneric   ErrorFamily = "generic"
	FamilyNode      ErrorFamily = "config/node"
	FamilyCrypto    ErrorFamily = "crypto"
	FamilyContracts ErrorFamily = "contracts"
	FamilyQueries   ErrorFamily = "queries"
	FamilyWallet    ErrorFamily = "wallet"
	FamilyUnknown   ErrorFamily = "unknown"
)

// Family returns the family a code belongs to.
func (c ErrorCode) Family() ErrorFamily {
	switch {
	case c > 0 && c < 1000:
		return FamilyGeneric
	case c >= 1000 && c < 2000:
		return FamilyNode
	case c >= 2000 && c < 3000:
		return FamilyCrypto
	case c >= 3000 && c < 4000:
		return FamilyContracts
	case c >= 4000 && c < 5000:
		return FamilyQueries
	case c >= 5000 && c < 6000:
		return FamilyWallet
	default:
		return FamilyUnknown
	}
}

// Describe returns the documented meaning of a code, or "" if undocumented.
func (c ErrorCode) Describe() string {
	return errorDescriptions[c]
}

// KnownErrorCodes returns every documented code in no particular order.
func KnownErrorCodes() []ErrorCode {
	codes := make([]ErrorCode, 0, len(errorDescriptions))
	for c := range errorDescriptions {
		codes = append(codes, c)
	}
	return codes
}

func (c ErrorCode) String() string {
	if d := c.Describe(); d != "" {
		return fmt.Sprintf("%d (%s): %s", int(c), c.Family(), d)
	}
	return fmt.Sprintf("%d (%s)", int(c), c.Family())
}

var errorDescriptions = map[ErrorCode]string{
	1: "unknown method name passed to the JSON API",
	2: "invalid format of the parameters JSON",
	3: "invalid context handle",

	1000: "config initialization failed",
	1001: "failed to send node request",
	1002: "run local failed: account does not exist",
	1003: "operation timeout",
	1004: "internal error",
	1005: "query failed",
	1006: "message expired",
	1007: "server doesn't support aggregations",
	1008: "invalid CONS structure; each CONS item must consist of two elements",
	1009: "address required for run local",
	1010: "no blocks produced during timeout",
	1011: "existing block transaction not found",
	1012: "transaction was not produced during the message processing timeout",
	1013: "local clock is out of sync with the server time",
	1014: "account does not exist",
	1015: "account exists but has no contract code yet",
	1016: "account balance too low",
	1017: "account was frozen due to the storage phase",

	2001: "invalid public key format or size",
	2002: "invalid secret key format or size",
	2003: "invalid key format or size",
	2004: "invalid address format or size",
	2005: "invalid hex user data",
	2006: "invalid base64 user data",
	2007: "invalid factorize challenge",
	2008: "invalid big int",
	2009: "conversion input is missing",
	2010: "conversion output can not be encoded to utf8",
	2011: "scrypt failed",
	2012: "invalid key size",
	2013: "secretbox failed",
	2014: "nacl.box failed",
	2015: "nacl.sign failed",
	2016: "invalid bip39 entropy",
	2017: "invalid bip39 phrase",
	2018: "invalid bip32 key",
	2019: "invalid bip32 derive path",
	2020: "keystore handle is invalid or was removed",
	2021: "either key or keystore handle must be specified",
	2022: "invalid mnemonic dictionary",
	2023: "invalid mnemonic word count",
	2024: "generating mnemonic phrase failed",
	2025: "generating mnemonic from entropy failed",

	3001: "load contract failed",
	3002: "invalid contract image",
	3003: "image creation failed",
	3004: "deploy failed: transaction missing",
	3005: "decode run output failed",
	3006: "decode run input failed",
	3007: "contract execution failed",
	3008: "contract load failed",
	3009: "transaction missing",
	3010: "send message failed",
	3011: "create deploy message failed",
	3012: "create run message failed",
	3013: "create send tokens message failed",
	3014: "encoding message with sign failed",
	3015: "deploy failed: transaction aborted",
	3016: "run body creation failed",
	3017: "get function id failed",
	3018: "local run failed",
	3019: "address conversion failed",
	3020: "invalid bag of cells",
	3021: "load messages failed",
	3022: "can not serialize message",
	3023: "process message failed",
	3024: "account exists but code is not deployed",
	3025: "local contract execution failed; see data.exit_code",

	4001: "query failed",
	4002: "queries subscribe failed",
	4003: "queries wait_for failed",
	4004: "queries get next failed",

	5000: "reserved for wallet errors",
}

// NativeError is the decoded form of an error JSON payload.
type NativeError struct {
	Source  string          `json:"source"`
	Code    ErrorCode       `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *NativeError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("%s error %d: %s", e.Source, int(e.Code), e.Message)
	}
	return fmt.Sprintf("error %d: %s", int(e.Code), e.Message)
}

// ParseNativeError decodes an error JSON payload such as Payload.Error.
func ParseNativeError(errorJSON string) (*NativeError, error) {
	var e NativeError
	if err := json.Unmarshal([]byte(errorJSON), &e); err != nil {
		return nil, fmt.Errorf("decode native error: %w", err)
	}
	return &e, nil
}

// Err returns the payload's error JSON as a *NativeError, or nil when the
// request succeeded. Undecodable error text is wrapped as is.
func (p Payload) Err() error {
	if !p.Failed() {
		return nil
	}
	ne, err := ParseNativeError(p.Error)
	if err != nil {
		return fmt.Errorf("native error %s: %w", p.Error, err)
	}
	return ne
}
