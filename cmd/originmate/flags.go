// Copyright (c) 2024 The OriginByte developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	cli "gopkg.in/urfave/cli.v1"
)

var (
	variantFlag = cli.StringFlag{
		Name:  "variant",
		Value: "seed",
		Usage: "entry point variant to derive (seed, seed_no_counter, seed_no_address, seed_no_ctx, seed_with_counter, seed_with_ctx, rand, rand_no_counter, rand_no_nonce, rand_no_ctx, rand_with_counter, rand_with_ctx, rand_with_nonce)",
	}
	counterFlag = cli.StringFlag{
		Name:  "counter",
		Value: "0",
		Usage: "counter value before the call, decimal or 0x-hex",
	}
	senderFlag = cli.StringFlag{
		Name:  "sender",
		Usage: "sender address, 0x-hex (defaults to the context sender)",
	}
	epochFlag = cli.Uint64Flag{
		Name:  "epoch",
		Usage: "transaction epoch",
	}
	txHashFlag = cli.StringFlag{
		Name:  "tx-hash",
		Usage: "transaction hash, 0x-hex",
	}
	nonceFlag = cli.StringFlag{
		Name:  "nonce",
		Usage: "caller nonce bytes, 0x-hex",
	}
	contextFlag = cli.StringFlag{
		Name:  "context",
		Usage: "yaml file carrying txHash, sender and epoch (overrides the individual flags)",
	}
	widthFlag = cli.IntFlag{
		Name:  "width",
		Value: 64,
		Usage: "output width in bits (8|64|128|256)",
	}
	bcsFlag = cli.BoolFlag{
		Name:  "bcs",
		Usage: "treat input as a canonical encoding (strict, aborts on short input)",
	}
	verboseFlag = cli.BoolFlag{
		Name:  "verbose",
		Usage: "enable debug logging",
	}
)
