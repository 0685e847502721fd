package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/yseddiki/ohIPlay/internal/domain"
)

// SignatureHeader carries the gateway's webhook signature:
// "t=<unix>,v1=<hex hmac-sha256(secret, "<t>.<body>")>".
const SignatureHeader = "X-Provider-Signature"

const DefaultTolerance = 5 * time.Minute

// SignatureVerifier authenticates webhook payloads against the pre-shared
// signing secret. Nothing downstream may trust a payload it has not passed.
type SignatureVerifier struct {
	secret    []byte
	tolerance time.Duration
	now       func() time.Time
}

func NewSignatureVerifier(secret string, tolerance time.Duration) *SignatureVerifier {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	return &SignatureVerifier{
		secret:    []byte(secret),
		tolerance: tolerance,
		now:       time.Now,
	}
}

func (v *SignatureVerifier) Verify(payload []byte, header string) error {
	if header == "" {
		return fmt.Errorf("%w: missing signature header", domain.ErrInvalidSignature)
	}

	var (
		timestamp  int64
		signatures [][]byte
	)
	for _, part := range strings.Split(header, ",") {
		k, val, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch k {
		case "t":
			ts, err := strconv.ParseInt(val, 10, 64)
			if err != nil {
				return fmt.Errorf("%w: malformed timestamp", domain.ErrInvalidSignature)
			}
			timestamp = ts
		case "v1":
			sig, err := hex.DecodeString(val)
			if err != nil {
				continue
			}
			signatures = append(signatures, sig)
		}
	}

	if timestamp == 0 || len(signatures) == 0 {
		return fmt.Errorf("%w: malformed signature header", domain.ErrInvalidSignature)
	}

	age := v.now().Sub(time.Unix(timestamp, 0))
	if age > v.tolerance || age < -v.tolerance {
		return fmt.Errorf("%w: timestamp outside tolerance", domain.ErrInvalidSignature)
	}

	expected := computeSignature(v.secret, timestamp, payload)
	for _, sig := range signatures {
		if hmac.Equal(sig, expected) {
			return nil
		}
	}

	return fmt.Errorf("%w: signature mismatch", domain.ErrInvalidSignature)
}

// Sign produces a header value for the given payload. The gateway does the
// same on delivery; tests and local tooling use it to forge valid requests.
func Sign(secret string, at time.Time, payload []byte) string {
	sig := computeSignature([]byte(secret), at.Unix(), payload)
	return fmt.Sprintf("t=%d,v1=%s", at.Unix(), hex.EncodeToString(sig))
}

func computeSignature(secret []byte, timestamp int64, payload []byte) []byte {
	mac := hmac.New(sha256.New, secret)
	fmt.Fprintf(mac, "%d.", timestamp)
	mac.Write(payload)
	return mac.Sum(nil)
}
