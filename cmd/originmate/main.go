// Copyright (c) 2024 The OriginByte developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"

	"github.com/Origin-Byte/originmate/origin"
	"github.com/Origin-Byte/originmate/pseudorandom"
)

var (
	version   string
	gitCommit string
)

func fullVersion() string {
	if gitCommit == "" {
		return version + "-dev"
	}
	return fmt.Sprintf("%s-%s", version, gitCommit)
}

func main() {
	app := cli.App{
		Version:   fullVersion(),
		Name:      "originmate",
		Usage:     "offline companion for on-chain pseudo-random seed derivation",
		Copyright: "2024 OriginByte",
		Flags: []cli.Flag{
			verboseFlag,
		},
		Commands: []cli.Command{
			{
				Name:      "seed",
				Usage:     "derive the seed a given entry point variant would produce",
				ArgsUsage: " ",
				Flags: []cli.Flag{
					variantFlag,
					counterFlag,
					senderFlag,
					epochFlag,
					txHashFlag,
					nonceFlag,
					contextFlag,
				},
				Action: seedAction,
			},
			{
				Name:      "decode",
				Usage:     "decode hex bytes into an unsigned integer",
				ArgsUsage: "<0x-hex bytes>",
				Flags: []cli.Flag{
					widthFlag,
					bcsFlag,
				},
				Action: decodeAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func seedAction(ctx *cli.Context) error {
	initLogger(ctx)

	variant := ctx.String(variantFlag.Name)
	counter, err := counterFromFlags(ctx)
	if err != nil {
		return err
	}
	txctx, err := contextFromFlags(ctx)
	if err != nil {
		return err
	}
	sender, err := senderFromFlags(ctx, txctx)
	if err != nil {
		return err
	}
	nonce, err := parseNonce(ctx.String(nonceFlag.Name))
	if err != nil {
		return errors.WithMessage(err, "parse --nonce")
	}

	slog.Debug("derivation inputs",
		"variant", variant,
		"counter", counter.Value().Dec(),
		"sender", sender,
		"epoch", txctx.Epoch(),
		"nonceLen", len(nonce))

	var seed origin.Bytes32
	switch variant {
	case "seed":
		seed = pseudorandom.Seed(counter, sender, txctx)
	case "seed_no_counter":
		seed = pseudorandom.SeedNoCounter(sender, txctx)
	case "seed_no_address":
		seed = pseudorandom.SeedNoAddress(counter, txctx)
	case "seed_no_ctx":
		seed = pseudorandom.SeedNoCtx(counter, sender)
	case "seed_with_counter":
		seed = pseudorandom.SeedWithCounter(counter)
	case "seed_with_ctx":
		seed = pseudorandom.SeedWithCtx(txctx)
	case "rand":
		seed = pseudorandom.Rand(nonce, counter, txctx)
	case "rand_no_counter":
		seed = pseudorandom.RandNoCounter(nonce, txctx)
	case "rand_no_nonce":
		seed = pseudorandom.RandNoNonce(counter, txctx)
	case "rand_no_ctx":
		seed = pseudorandom.RandNoCtx(nonce, counter)
	case "rand_with_counter":
		seed = pseudorandom.RandWithCounter(counter)
	case "rand_with_ctx":
		seed = pseudorandom.RandWithCtx(txctx)
	case "rand_with_nonce":
		seed = pseudorandom.RandWithNonce(nonce)
	default:
		return errors.Errorf("unknown variant %q", variant)
	}

	fmt.Println(seed.String())
	return nil
}

func decodeAction(ctx *cli.Context) (err error) {
	initLogger(ctx)

	input := ctx.Args().First()
	if input == "" {
		return errors.New("missing hex input argument")
	}
	b, err := hexutil.Decode(input)
	if err != nil {
		return errors.WithMessage(err, "parse input")
	}

	// strict decoding aborts on malformed input; surface it as an error
	defer func() {
		if e := recover(); e != nil {
			err = errors.Errorf("decode aborted: %v", e)
		}
	}()

	width := ctx.Int(widthFlag.Name)
	strict := ctx.Bool(bcsFlag.Name)
	switch {
	case width == 8 && strict:
		fmt.Println(pseudorandom.BCSU8FromBytes(b))
	case width == 8:
		fmt.Println(pseudorandom.U8FromBytes(b))
	case width == 64 && strict:
		fmt.Println(pseudorandom.BCSU64FromBytes(b))
	case width == 64:
		fmt.Println(pseudorandom.U64FromBytes(b))
	case width == 128 && strict:
		fmt.Println(pseudorandom.BCSU128FromBytes(b).Dec())
	case width == 128:
		fmt.Println(pseudorandom.U128FromBytes(b).Dec())
	case width == 256 && !strict:
		fmt.Println(pseudorandom.U256FromBytes(b).Dec())
	default:
		return errors.Errorf("unsupported width %d (bcs=%v)", width, strict)
	}
	return nil
}

func initLogger(ctx *cli.Context) {
	lvl := slog.LevelInfo
	if ctx.GlobalBool(verboseFlag.Name) || ctx.Bool(verboseFlag.Name) {
		lvl = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}
