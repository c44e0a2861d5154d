// Package indodax implements the authenticated client for the Indodax
// private trade API (TAPI): request signing, dispatch, and one typed
// operation per API method.
package indodax

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"net/url"
)

// Sign serializes params into the canonical payload and computes the
// request signature. The payload is url.Values.Encode() output: keys in
// sorted order, values percent-encoded. The exact payload string must be
// sent as the POST body; the server verifies the signature against the
// bytes it receives, so body and signature input have to be the same
// string, never re-serialized independently.
//
// Parameters that are absent must simply not be set on params; there is no
// encoding for null.
func Sign(params url.Values, secretKey string) (payload, signature string) {
	if secretKey == "" {
		panic("indodax: Sign called with empty secret key")
	}
	payload = params.Encode()
	mac := hmac.New(sha512.New, []byte(secretKey))
	mac.Write([]byte(payload))
	return payload, hex.EncodeToString(mac.Sum(nil))
}
