package otp

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
	"github.com/shandysiswandi/ayola/internal/pkg/clock"
)

// DefaultStaticCode is the passcode accepted by the static verifier when none is configured.
const DefaultStaticCode = "111111"

const (
	DriverStatic = "static"
	DriverTOTP   = "totp"
)

// ErrUnknownDriver is returned by NewFromDriver for unsupported drivers.
var ErrUnknownDriver = errors.New("otp: unknown driver")

// Verifier checks a candidate passcode.
type Verifier interface {
	Verify(code string) bool
}

// Static accepts exactly one fixed code.
type Static struct {
	code string
}

// NewStatic returns a Static verifier. An empty code falls back to DefaultStaticCode.
func NewStatic(code string) *Static {
	if code == "" {
		code = DefaultStaticCode
	}
	return &Static{code: code}
}

// Verify reports whether code equals the configured code.
func (s *Static) Verify(code string) bool {
	return subtle.ConstantTimeCompare([]byte(s.code), []byte(code)) == 1
}

// TOTP validates codes with the Time-based One-Time Password algorithm.
type TOTP struct {
	secret string
	period uint
	skew   uint
	digits otp.Digits
	clock  clock.Clocker
}

// NewTOTP constructs a TOTP verifier with sensible defaults.
//
// If digits is not 6 or 8, it falls back to 6 digits. If period is 0, it uses
// the common 30-second period.
func NewTOTP(secret string, period, skew uint, digits otp.Digits, clk clock.Clocker) *TOTP {
	if digits != otp.DigitsSix && digits != otp.DigitsEight {
		digits = otp.DigitsSix
	}

	if period == 0 {
		period = 30
	}

	if skew == 0 {
		skew = 1
	}

	return &TOTP{
		secret: secret,
		period: period,
		skew:   skew,
		digits: digits,
		clock:  clk,
	}
}

func (o *TOTP) opts() totp.ValidateOpts {
	return totp.ValidateOpts{
		Period:    o.period,
		Skew:      o.skew,
		Digits:    o.digits,
		Algorithm: otp.AlgorithmSHA1,
	}
}

// Verify checks whether code is valid at the clock's current time.
func (o *TOTP) Verify(code string) bool {
	rv, err := totp.ValidateCustom(code, o.secret, o.clock.Now(), o.opts())

	return rv && err == nil
}

// GenerateCode creates the code valid at the given time.
func (o *TOTP) GenerateCode(at time.Time) (string, error) {
	return totp.GenerateCodeCustom(o.secret, at, o.opts())
}

// GenerateSecret creates a new base32 secret and its provisioning URI.
func GenerateSecret(issuer, accountName string) (secret string, uri string, err error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      issuer,
		AccountName: accountName,
		SecretSize:  20, // RFC 4226/6238 recommendation
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		return "", "", err
	}

	return key.Secret(), key.URL(), nil
}

// Options configures NewFromDriver.
type Options struct {
	StaticCode string
	Secret     string
	Period     uint
	Skew       uint
	Clock      clock.Clocker
}

// NewFromDriver builds a Verifier for the named driver.
func NewFromDriver(driver string, opts Options) (Verifier, error) {
	switch driver {
	case "", DriverStatic:
		return NewStatic(opts.StaticCode), nil
	case DriverTOTP:
		if opts.Secret == "" {
			return nil, errors.New("otp: totp secret is required")
		}
		clk := opts.Clock
		if clk == nil {
			clk = clock.New()
		}
		return NewTOTP(opts.Secret, opts.Period, opts.Skew, otp.DigitsSix, clk), nil
	default:
		return nil, ErrUnknownDriver
	}
}
