package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/spf13/cobra"
)

// peersCmd represents the peers command.
var peersCmd = &cobra.Command{
	Use:   "peers [address ...]",
	Short: "Register peer addresses with the node",
	Args:  cobra.MinimumNArgs(1),
	Run:   peersRun,
}

func init() {
	rootCmd.AddCommand(peersCmd)
}

func peersRun(cmd *cobra.Command, args []string) {
	reg := struct {
		Nodes []string `json:"nodes"`
	}{
		Nodes: args,
	}

	data, err := json.Marshal(reg)
	if err != nil {
		log.Fatal(err)
	}

	resp, err := http.Post(fmt.Sprintf("%s/v1/peers/register", url), "application/json", bytes.NewBuffer(data))
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(string(body))
}
