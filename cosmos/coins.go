package cosmos

import (
	"encoding/hex"
	"regexp"
	"strings"

	"cosmossdk.io/math"
	cmtbytes "github.com/cometbft/cometbft/libs/bytes"

	"github.com/thec00n/osmosis-cli-wrapper/types"
)

const txHashLen = 32

var regexCoin = regexp.MustCompile(`^([0-9]+)([a-zA-Z][a-zA-Z0-9/:._-]{2,127})$`)

// ParseCoins validates a comma separated coin list such as "1000uosmo,5uion"
// and returns it in the form the daemon expects. Empty input is allowed.
func ParseCoins(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}

	var coins []string
	for _, raw := range strings.Split(s, ",") {
		coin := strings.TrimSpace(raw)
		m := regexCoin.FindStringSubmatch(coin)
		if m == nil {
			return "", types.ErrInvalidInput.Wrapf("invalid coin %q, expected <amount><denom>", coin)
		}
		amount, ok := math.NewIntFromString(m[1])
		if !ok || !amount.IsPositive() {
			return "", types.ErrInvalidInput.Wrapf("invalid coin amount %q", m[1])
		}
		coins = append(coins, amount.String()+m[2])
	}
	return strings.Join(coins, ","), nil
}

// NormalizeTxHash validates a hex encoded tx hash and returns it upper-cased
// the way the chain prints hashes.
func NormalizeTxHash(hash string) (string, error) {
	hash = strings.TrimSpace(hash)
	if hash == "" {
		return "", types.ErrInvalidInput.Wrap("need a tx hash to get events")
	}
	bz, err := hex.DecodeString(strings.TrimPrefix(strings.TrimPrefix(hash, "0x"), "0X"))
	if err != nil {
		return "", types.ErrInvalidInput.Wrapf("tx hash %q is not hex: %s", hash, err)
	}
	if len(bz) != txHashLen {
		return "", types.ErrInvalidInput.Wrapf("tx hash %q must be %d bytes, got %d", hash, txHashLen, len(bz))
	}
	return cmtbytes.HexBytes(bz).String(), nil
}
