package validators

import (
	pkgerrors "github.com/modos-studio/quotepilot-backend/pkg/errors"
)

const maxShareTokenLen = 64

// ShareToken validates the opaque public token from a share URL. Tokens are
// url-safe base64, anything else is rejected before touching storage.
func ShareToken(raw string) (string, error) {
	if raw == "" || len(raw) > maxShareTokenLen {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "invalid share token")
	}
	for _, r := range raw {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return "", pkgerrors.New(pkgerrors.CodeValidation, "invalid share token")
		}
	}
	return raw, nil
}
