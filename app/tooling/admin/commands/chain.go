package commands

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/chalkchain/chalkchain/foundation/ledger/block"
	"github.com/spf13/cobra"
)

// chainCmd represents the chain command.
var chainCmd = &cobra.Command{
	Use:   "chain",
	Short: "Print the node's full chain",
	Run:   chainRun,
}

func init() {
	rootCmd.AddCommand(chainCmd)
}

func chainRun(cmd *cobra.Command, args []string) {
	resp, err := http.Get(fmt.Sprintf("%s/v1/chain", url))
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()

	var cr struct {
		Chain  []block.Block `json:"chain"`
		Length int           `json:"length"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		log.Fatal(err)
	}

	fmt.Println("Length:", cr.Length)
	for _, b := range cr.Chain {
		fmt.Printf("Block %d: proof[%d] prev[%s] txs[%d]\n", b.Index, b.Proof, b.PrevHash, len(b.Transactions))
	}
}
