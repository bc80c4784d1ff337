// Copyright (c) 2024 The OriginByte developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package main

import (
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	cli "gopkg.in/urfave/cli.v1"
	"gopkg.in/yaml.v3"

	"github.com/Origin-Byte/originmate/origin"
	"github.com/Origin-Byte/originmate/pseudorandom"
	"github.com/Origin-Byte/originmate/txcontext"
)

// contextConfig is the yaml shape of a --context file.
type contextConfig struct {
	TxHash string `yaml:"txHash"`
	Sender string `yaml:"sender"`
	Epoch  uint64 `yaml:"epoch"`
}

func (cfg *contextConfig) toContext() (*txcontext.TxContext, error) {
	var txHash origin.Bytes32
	if cfg.TxHash != "" {
		parsed, err := origin.ParseBytes32(cfg.TxHash)
		if err != nil {
			return nil, errors.WithMessage(err, "parse txHash")
		}
		txHash = parsed
	}
	var sender origin.Address
	if cfg.Sender != "" {
		parsed, err := origin.ParseAddress(cfg.Sender)
		if err != nil {
			return nil, errors.WithMessage(err, "parse sender")
		}
		sender = *parsed
	}
	return txcontext.New(txHash, sender, cfg.Epoch), nil
}

func loadContextFile(path string) (*txcontext.TxContext, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithMessage(err, "read context file")
	}
	var cfg contextConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.WithMessage(err, "parse context file")
	}
	return cfg.toContext()
}

func contextFromFlags(ctx *cli.Context) (*txcontext.TxContext, error) {
	if path := ctx.String(contextFlag.Name); path != "" {
		return loadContextFile(path)
	}
	cfg := contextConfig{
		TxHash: ctx.String(txHashFlag.Name),
		Sender: ctx.String(senderFlag.Name),
		Epoch:  ctx.Uint64(epochFlag.Name),
	}
	tc, err := cfg.toContext()
	if err != nil {
		return nil, errors.WithMessage(err, "build context from flags")
	}
	return tc, nil
}

func counterFromFlags(ctx *cli.Context) (*pseudorandom.Counter, error) {
	v, err := parseUint256(ctx.String(counterFlag.Name))
	if err != nil {
		return nil, errors.WithMessage(err, "parse --counter")
	}
	return pseudorandom.NewCounterAt(v), nil
}

func senderFromFlags(ctx *cli.Context, tc *txcontext.TxContext) (origin.Address, error) {
	s := ctx.String(senderFlag.Name)
	if s == "" {
		return tc.Sender(), nil
	}
	parsed, err := origin.ParseAddress(s)
	if err != nil {
		return origin.Address{}, errors.WithMessage(err, "parse --sender")
	}
	return *parsed, nil
}

func parseUint256(s string) (*uint256.Int, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return uint256.FromHex(s)
	}
	return uint256.FromDecimal(s)
}

func parseNonce(s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	return hexutil.Decode(s)
}
