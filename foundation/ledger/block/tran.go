package block

import "fmt"

// RewardSender is the sentinel sender address used on the transaction that
// rewards a node for mining a new block.
const RewardSender = "0"

// RewardAmount is the fixed amount credited for mining a new block. There is
// no supply cap or halving schedule.
const RewardAmount = 1

// Tx represents a transfer between two parties. There is no signature or
// identity attached; a transaction is nothing more than a claim.
type Tx struct {
	Sender    string  `json:"sender"`
	Recipient string  `json:"recipient"`
	Amount    float64 `json:"amount"`
}

// NewRewardTx constructs the mining reward transaction for the specified
// node identity.
func NewRewardTx(nodeID string) Tx {
	return Tx{
		Sender:    RewardSender,
		Recipient: nodeID,
		Amount:    RewardAmount,
	}
}

// String implements the fmt.Stringer interface for logging.
func (tx Tx) String() string {
	return fmt.Sprintf("%s:%s:%v", tx.Sender, tx.Recipient, tx.Amount)
}
