package immvis

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/immvis/immvis-go/metric"
)

var errNotBool = errors.New("want true or false")

// parseBool accepts only true and false in any letter case.
func parseBool(tok string) (bool, error) {
	switch t := strings.TrimSpace(tok); {
	case strings.EqualFold(t, "true"):
		return true, nil
	case strings.EqualFold(t, "false"):
		return false, nil
	default:
		return false, errNotBool
	}
}

func parseBools(method string, tokens []string) ([]bool, error) {
	res := make([]bool, 0, len(tokens))
	for i, tok := range tokens {
		v, err := parseBool(tok)
		if err != nil {
			return nil, malformed(method, i, tok, err)
		}
		res = append(res, v)
	}
	return res, nil
}

func parseInts(method string, tokens []string) ([]int, error) {
	res := make([]int, 0, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.ParseInt(strings.TrimSpace(tok), 10, 32)
		if err != nil {
			return nil, malformed(method, i, tok, err)
		}
		res = append(res, int(v))
	}
	return res, nil
}

func malformed(method string, idx int, tok string, err error) error {
	metric.ClientMalformedResponse.WithLabelValues(method).Inc()
	return fmt.Errorf("%w: %s data[%d]=%q: %w", ErrMalformedResponse, method, idx, tok, err)
}
