package model

import "github.com/ethereum/go-ethereum/common"

// Token describes a registered token: its canonical contract and the
// contract used when trading against the swap pools. The two differ for
// wrapped assets (the native coin trades through its wrapper).
type Token struct {
	Symbol      string         `json:"symbol"`
	Address     common.Address `json:"address"`
	SwapAddress common.Address `json:"swap_address"`
	Decimals    uint8          `json:"decimals"`
}
