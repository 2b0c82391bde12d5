package cmd

import (
	"encoding/json"
	"strings"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/spf13/cobra"
	"github.com/yiplee/structs"
)

func printJSON(cmd *cobra.Command, v interface{}) {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		panic(err)
	}

	cmd.Println(string(data))
}

// printFields one line per exported field, named by its json tag
func printFields(cmd *cobra.Command, v interface{}) {
	for _, field := range structs.Fields(v) {
		if !field.IsExported() {
			continue
		}

		name := strings.Split(field.Tag(structs.DefaultTagName), ",")[0]
		if name == "" || name == "-" {
			name = field.Name()
		}

		cmd.Printf("%-30s %v\n", name, field.Value())
	}
}

func printReceipt(cmd *cobra.Command, receipt *types.Receipt) {
	status := "success"
	if receipt.Status != types.ReceiptStatusSuccessful {
		status = "reverted"
	}

	cmd.Printf("tx %s %s, gas used %d\n", receipt.TxHash.Hex(), status, receipt.GasUsed)
}
