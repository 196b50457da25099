package commands

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lidofinance/near-jsonrpc/internal/pkg/near/entity"
)

func (o *options) print(cmd *cobra.Command, v any) error {
	out, err := o.render(v)
	if err != nil {
		return fmt.Errorf("could not render output: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}

func (o *options) render(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	if o.keyCase == keyCaseCamel {
		if data, err = entity.ConvertKeys(data, entity.SnakeToCamel); err != nil {
			return nil, err
		}
	}

	if o.sorted {
		return entity.MarshalCanonical(json.RawMessage(data), true)
	}

	var buf bytes.Buffer
	if err = json.Indent(&buf, data, "", "  "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
