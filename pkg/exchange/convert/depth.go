package convert

import (
	"encoding/json"
	"sort"

	"github.com/pkg/errors"

	"github.com/uniex/uniex/pkg/fixedpoint"
	"github.com/uniex/uniex/pkg/types"
)

// DepthFields selects the price/volume field names when the exchange
// encodes book levels as objects instead of arrays.
type DepthFields struct {
	Price  string
	Volume string
}

// ParseDepth decodes one side of an order book from the raw rows. Rows may
// be arrays (["100.5","2"] or [100.5,2]) or objects with the fields named
// by sel.
func ParseDepth(rows []json.RawMessage, sel *DepthFields) (types.PriceVolumeSlice, error) {
	var slice types.PriceVolumeSlice

	for _, row := range rows {
		var arr []fixedpoint.Value
		if err := json.Unmarshal(row, &arr); err == nil {
			if len(arr) < 2 {
				return nil, errors.Errorf("depth row %s has fewer than 2 columns", string(row))
			}
			slice = append(slice, types.NewPriceVolume(arr[0], arr[1]))
			continue
		}

		if sel == nil {
			return nil, errors.Errorf("can not decode depth row %s without field selector", string(row))
		}

		var obj map[string]fixedpoint.Value
		if err := json.Unmarshal(row, &obj); err != nil {
			return nil, errors.Wrapf(err, "can not decode depth row %s", string(row))
		}

		price, ok := obj[sel.Price]
		if !ok {
			continue
		}
		volume := obj[sel.Volume]
		slice = append(slice, types.NewPriceVolume(price, volume))
	}

	return slice, nil
}

// SortDepth sorts one book side and collapses duplicate price levels.
// Policy: the last entry of a duplicated price wins. descending is true
// for bids, false for asks.
func SortDepth(slice types.PriceVolumeSlice, descending bool) types.PriceVolumeSlice {
	if len(slice) == 0 {
		return slice
	}

	// last wins, so walk in order and overwrite
	seen := make(map[string]int, len(slice))
	var out types.PriceVolumeSlice
	for _, pv := range slice {
		key := pv.Price.String()
		if idx, ok := seen[key]; ok {
			out[idx] = pv
			continue
		}
		seen[key] = len(out)
		out = append(out, pv)
	}

	if descending {
		sort.Sort(sort.Reverse(out))
	} else {
		sort.Sort(out)
	}

	return out
}

// BuildOrderBook assembles a normalized snapshot from the two raw sides.
func BuildOrderBook(symbol string, bids, asks []json.RawMessage, sel *DepthFields) (*types.SliceOrderBook, error) {
	parsedBids, err := ParseDepth(bids, sel)
	if err != nil {
		return nil, errors.Wrap(err, "bids")
	}

	parsedAsks, err := ParseDepth(asks, sel)
	if err != nil {
		return nil, errors.Wrap(err, "asks")
	}

	return &types.SliceOrderBook{
		Symbol: symbol,
		Bids:   SortDepth(parsedBids, true),
		Asks:   SortDepth(parsedAsks, false),
	}, nil
}
