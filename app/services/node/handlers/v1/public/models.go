package public

import "github.com/chalkchain/chalkchain/foundation/ledger/block"

// submitTx is what a client posts to place a transaction in the pending
// pool. Presence of the three fields is the only validation performed.
type submitTx struct {
	Sender    string   `json:"sender" validate:"required"`
	Recipient string   `json:"recipient" validate:"required"`
	Amount    *float64 `json:"amount" validate:"required"`
}

type submitResp struct {
	Message string `json:"message"`
	Index   uint64 `json:"index"`
}

type mineResp struct {
	Message      string     `json:"message"`
	Index        uint64     `json:"index"`
	Transactions []block.Tx `json:"transactions"`
	Proof        uint64     `json:"proof"`
	PrevHash     string     `json:"previous_hash"`
}

type chainResp struct {
	Chain  []block.Block `json:"chain"`
	Length int           `json:"length"`
}

type registerPeers struct {
	Nodes []string `json:"nodes" validate:"required,min=1"`
}

type registerResp struct {
	Message    string   `json:"message"`
	TotalNodes []string `json:"total_nodes"`
}

type resolveResp struct {
	Message string        `json:"message"`
	Chain   []block.Block `json:"chain"`
}
