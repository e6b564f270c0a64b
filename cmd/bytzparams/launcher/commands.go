package launcher

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"gopkg.in/urfave/cli.v1"

	"github.com/rony4d/go-bytz-params/chaincfg"
	"github.com/rony4d/go-bytz-params/chaincfg/llmq"
)

func showParams(ctx *cli.Context, p *chaincfg.Params) error {
	var out bytes.Buffer
	if err := json.Indent(&out, []byte(p.String()), "", "  "); err != nil {
		return err
	}
	out.WriteByte('\n')
	_, err := ctx.App.Writer.Write(out.Bytes())
	return err
}

func showGenesis(ctx *cli.Context, p *chaincfg.Params) error {
	tw := tabwriter.NewWriter(ctx.App.Writer, 0, 8, 1, ' ', 0)

	h := p.GenesisBlock.Header
	fmt.Fprintf(tw, "network\t%s\n", p.Name)
	fmt.Fprintf(tw, "genesis\t%s\n", h.BlockHash())
	fmt.Fprintf(tw, "merkle root\t%s\n", h.MerkleRoot)
	fmt.Fprintf(tw, "time\t%d\n", h.Timestamp.Unix())
	fmt.Fprintf(tw, "nonce\t%d\n", h.Nonce)
	fmt.Fprintf(tw, "bits\t%08x\n", h.Bits)

	if p.DevnetName != "" {
		fmt.Fprintf(tw, "devnet\t%s\n", p.DevnetName)
		if b := p.DevnetGenesisBlock; b != nil {
			fmt.Fprintf(tw, "devnet genesis\t%s\n", b.BlockHash())
			fmt.Fprintf(tw, "devnet merkle root\t%s\n", b.Header.MerkleRoot)
			fmt.Fprintf(tw, "devnet nonce\t%d\n", b.Header.Nonce)
		} else {
			fmt.Fprintf(tw, "devnet genesis\t%s\n", "not mined (construct only)")
		}
	}
	return tw.Flush()
}

func showQuorums(ctx *cli.Context, p *chaincfg.Params) error {
	c := p.Consensus

	roles := make(map[llmq.Type][]string)
	roles[c.LLMQTypeChainLocks] = append(roles[c.LLMQTypeChainLocks], "chainlocks")
	roles[c.LLMQTypeInstantSend] = append(roles[c.LLMQTypeInstantSend], "instantsend")
	roles[c.LLMQTypePlatform] = append(roles[c.LLMQTypePlatform], "platform")

	types := make([]llmq.Type, 0, len(c.LLMQs))
	for t := range c.LLMQs {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	tw := tabwriter.NewWriter(ctx.App.Writer, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "TYPE\tNAME\tSIZE\tMIN\tTHRESHOLD\tINTERVAL\tACTIVE\tROLES")
	for _, t := range types {
		q := c.LLMQs[t]
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%d\t%d\t%s\n",
			uint8(t), q.Name, q.Size, q.MinSize, q.Threshold, q.DKGInterval,
			q.SigningActiveQuorumCount, strings.Join(roles[t], ","))
	}
	return tw.Flush()
}
