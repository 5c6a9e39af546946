// Package buildersig builds the signed header set the Polymarket CLOB API
// requires on builder-authenticated requests.
package buildersig

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/vikions/opipolix-builder-dashboard/pkg/errors"
)

// Header names expected by the CLOB API on builder-authenticated requests.
const (
	HeaderAPIKey     = "POLY_BUILDER_API_KEY"
	HeaderSignature  = "POLY_BUILDER_SIGNATURE"
	HeaderTimestamp  = "POLY_BUILDER_TIMESTAMP"
	HeaderPassphrase = "POLY_BUILDER_PASSPHRASE"
)

// Credentials holds the builder API key set. All three values are required;
// the `,required` env tags make a missing secret a fatal configuration error
// at startup.
type Credentials struct {
	Key        string `env:"API_KEY,required,notEmpty"`
	Secret     string `env:"SECRET,required,notEmpty"`
	Passphrase string `env:"PASS_PHRASE,required,notEmpty"`
}

// Validate reports a configuration error when any of the three secrets is
// absent. Error messages never contain the secret values.
func (c Credentials) Validate() error {
	if c.Key == "" || c.Secret == "" || c.Passphrase == "" {
		return errors.NewErrorDetails(
			"missing builder credentials: BUILDER_API_KEY / BUILDER_SECRET / BUILDER_PASS_PHRASE must all be set",
			errors.ConfigError,
			"",
		)
	}
	return nil
}

// Sign computes the builder request signature: HMAC-SHA256 over
// timestamp + method + requestPath + body, keyed with the base64url-decoded
// secret, encoded back to base64url. requestPath must include the encoded
// query string when present so the signature covers the full request target.
func Sign(secret, timestamp, method, requestPath, body string) (string, error) {
	key, err := base64.URLEncoding.DecodeString(secret)
	if err != nil {
		return "", errors.NewErrorDetails(
			fmt.Sprintf("builder secret is not valid base64url: %v", err),
			errors.ConfigError,
			"secret",
		)
	}

	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(timestamp + method + requestPath + body))

	return base64.URLEncoding.EncodeToString(mac.Sum(nil)), nil
}

// Headers produces the full builder header set for one request.
func Headers(creds Credentials, method, requestPath, body string, now time.Time) (http.Header, error) {
	timestamp := strconv.FormatInt(now.Unix(), 10)

	signature, err := Sign(creds.Secret, timestamp, method, requestPath, body)
	if err != nil {
		return nil, err
	}

	// assigned directly instead of via Set: the API expects the exact
	// uppercase underscore form, which MIME canonicalization would mangle
	headers := http.Header{
		HeaderAPIKey:     {creds.Key},
		HeaderSignature:  {signature},
		HeaderTimestamp:  {timestamp},
		HeaderPassphrase: {creds.Passphrase},
	}

	return headers, nil
}
