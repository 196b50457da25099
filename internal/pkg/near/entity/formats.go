package entity

import (
	"regexp"
	"strings"

	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
	"github.com/mr-tron/base58"
)

const (
	FormatAccountID  = "near-account-id"
	FormatCryptoHash = "crypto-hash"
	FormatPublicKey  = "public-key"
)

const (
	minAccountIDLen = 2
	maxAccountIDLen = 64
	cryptoHashLen   = 32
)

var accountIDPattern = regexp.MustCompile(`^(([a-z\d]+[-_])*[a-z\d]+\.)*([a-z\d]+[-_])*[a-z\d]+$`)

// Formats knows the string formats of NEAR primitives.
var Formats = strfmt.NewFormats()

func init() {
	Formats.Add(FormatAccountID, new(AccountId), IsAccountID)
	Formats.Add(FormatCryptoHash, new(CryptoHash), IsCryptoHash)
	Formats.Add(FormatPublicKey, new(PublicKey), IsPublicKey)
}

func IsAccountID(s string) bool {
	if len(s) < minAccountIDLen || len(s) > maxAccountIDLen {
		return false
	}
	return accountIDPattern.MatchString(s)
}

func IsCryptoHash(s string) bool {
	raw, err := base58.Decode(s)
	return err == nil && len(raw) == cryptoHashLen
}

func IsPublicKey(s string) bool {
	data, err := PublicKey(s).Data()
	if err != nil {
		return false
	}

	switch PublicKey(s).KeyType() {
	case KeyTypeED25519:
		return len(data) == 32
	case KeyTypeSECP256K1:
		return len(data) == 64
	}
	return false
}

// validator collects go-openapi validation failures of one request.
type validator struct {
	formats strfmt.Registry
	errs    []error
}

func newValidator(formats strfmt.Registry) *validator {
	if formats == nil {
		formats = Formats
	}
	return &validator{formats: formats}
}

func (v *validator) add(err *errors.Validation) {
	if err != nil {
		v.errs = append(v.errs, err)
	}
}

func (v *validator) required(path string, value string) bool {
	if err := validate.RequiredString(path, "body", value); err != nil {
		v.errs = append(v.errs, err)
		return false
	}
	return true
}

func (v *validator) missing(path string) {
	v.errs = append(v.errs, errors.Required(path, "body", nil))
}

func (v *validator) format(path, format, value string) {
	v.add(validate.FormatOf(path, "body", format, value, v.formats))
}

func (v *validator) accountID(path string, id AccountId) {
	if v.required(path, string(id)) {
		v.format(path, FormatAccountID, string(id))
	}
}

func (v *validator) cryptoHash(path string, h CryptoHash) {
	if v.required(path, string(h)) {
		v.format(path, FormatCryptoHash, string(h))
	}
}

func (v *validator) publicKey(path string, k PublicKey) {
	if v.required(path, string(k)) {
		v.format(path, FormatPublicKey, string(k))
	}
}

func (v *validator) accountIDPtr(path string, id *AccountId) {
	if id == nil {
		v.missing(path)
		return
	}
	v.accountID(path, *id)
}

func (v *validator) cryptoHashPtr(path string, h *CryptoHash) {
	if h == nil {
		v.missing(path)
		return
	}
	v.cryptoHash(path, *h)
}

func (v *validator) publicKeyPtr(path string, k *PublicKey) {
	if k == nil {
		v.missing(path)
		return
	}
	v.publicKey(path, *k)
}

func (v *validator) enum(path string, value any, allowed any) {
	v.add(validate.EnumCase(path, "body", value, allowed, true))
}

func (v *validator) blockReference(r BlockReference) {
	set := 0
	if r.BlockID != nil {
		set++
		if r.BlockID.Hash != nil {
			v.cryptoHash("block_id", *r.BlockID.Hash)
		}
	}
	if r.Finality != nil {
		set++
		v.enum("finality", string(*r.Finality), stringsOf(Finalities))
	}
	if r.SyncCheckpoint != nil {
		set++
		v.enum("sync_checkpoint", string(*r.SyncCheckpoint), stringsOf(SyncCheckpoints))
	}

	switch set {
	case 0:
		v.missing("block_id|finality|sync_checkpoint")
	case 1:
	default:
		v.errs = append(v.errs, errors.New(errors.CompositeErrorCode,
			"only one of block_id, finality, sync_checkpoint may be set"))
	}
}

func (v *validator) result() error {
	if len(v.errs) == 0 {
		return nil
	}
	return errors.CompositeValidationError(v.errs...)
}

func stringsOf[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, s := range values {
		out[i] = string(s)
	}
	return out
}

// NormalizeAccountID lower-cases an account id typed by a human.
func NormalizeAccountID(s string) AccountId {
	return AccountId(strings.ToLower(strings.TrimSpace(s)))
}
