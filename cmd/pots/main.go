// Copyright © 2023 Weald Technology Trading.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command pots runs a single end-to-end Proof-of-Space session: it
// derives protocol parameters from a space requirement, builds a
// Prover, binds a Verifier to the Prover's published graph, issues and
// answers a challenge, and verifies the result. This is the host glue
// spec.md describes as out of scope for the core engine — a caller, not
// a dependency, of the package at the repository root.
package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"
	flags "github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/DrPeterVanNostrand/pots"
)

type options struct {
	Space    string `long:"space" default:"4kib" description:"space requirement, e.g. 4096, 4kib, 16mib, 1gib (kb/mb/gb are powers of 1000)"`
	Nonce    string `long:"nonce" description:"hex-encoded nonce (defaults to empty)"`
	LogLevel string `long:"log-level" default:"info" choice:"debug" choice:"info" choice:"warn" description:"log verbosity"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		os.Exit(1)
	}

	logOpts := []lgr.Option{lgr.Msec, lgr.LevelBraces}
	if opts.LogLevel == "debug" {
		logOpts = append(logOpts, lgr.Debug, lgr.CallerFile, lgr.CallerFunc)
	}
	log := lgr.New(logOpts...)

	sessionID := uuid.New().String()
	log.Logf("INFO [%s] starting session", sessionID)

	defer func() {
		if r := recover(); r != nil {
			log.Logf("ERROR [%s] panic: %v", sessionID, r)
			os.Exit(1)
		}
	}()

	if err := run(log, sessionID, opts); err != nil {
		log.Logf("ERROR [%s] %v", sessionID, err)
		os.Exit(1)
	}
}

func run(log lgr.L, sessionID string, opts options) error {
	nBytes, err := humanize.ParseBytes(opts.Space)
	if err != nil {
		return errors.Wrap(err, "could not parse --space")
	}

	params, err := pots.NewProtoParams(pots.SpaceBytes(int(nBytes)))
	if err != nil {
		return errors.Wrap(err, "could not derive protocol parameters")
	}
	log.Logf("INFO [%s] params: space=%d n=%d k=%d delta=%.4f l0=%d",
		sessionID, params.Space, params.N, params.K, params.Delta, params.L0)

	nonce, err := parseNonce(opts.Nonce)
	if err != nil {
		return errors.Wrap(err, "could not parse --nonce")
	}

	verifier := pots.NewVerifier(params, nonce)
	prover, err := pots.NewProver(params, verifier.Nonce())
	if err != nil {
		return errors.Wrap(err, "could not build prover")
	}
	log.Logf("INFO [%s] prover ready, merkle root committed", sessionID)

	verifier.SetGraphDescription(prover.Edges(), prover.MerkleRoot())

	challenge, err := verifier.GenChallenge()
	if err != nil {
		return errors.Wrap(err, "could not generate challenge")
	}
	log.Logf("INFO [%s] challenge drawn: %d indices", sessionID, len(challenge))

	proofs := prover.CreateProofs(challenge)
	if err := verifier.VerifyProofs(proofs); err != nil {
		return errors.Wrap(err, "verification failed")
	}
	log.Logf("INFO [%s] verification succeeded", sessionID)

	mp := prover.CreateMultiProof(challenge)
	leaves := make(map[int]pots.Digest, len(proofs))
	for _, proof := range proofs {
		leaves[proof.ChallengeIndex] = proof.Path[0]
	}
	ok, err := mp.Verify(leaves, prover.MerkleRoot())
	if err != nil {
		return errors.Wrap(err, "multiproof verification failed")
	}
	if !ok {
		return errors.New("multiproof did not verify against the published root")
	}
	log.Logf("INFO [%s] multiproof verification succeeded: %d leaves, %d carried hashes",
		sessionID, len(mp.Indices), len(mp.Hashes))

	return nil
}

func parseNonce(hexNonce string) ([]byte, error) {
	if hexNonce == "" {
		return []byte{}, nil
	}
	return decodeHex(hexNonce)
}

func decodeHex(s string) ([]byte, error) {
	out := make([]byte, len(s)/2)
	_, err := fmt.Sscanf(s, "%x", &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}
