// Package attestation signs and verifies a run's result so a stored
// RunResult can later be checked for tampering independent of whatever
// transport or file store carried it.
//
// Adapted from the teacher's federation/signing package: the same
// domain-tag-prefixed canonical-encoding-then-sign shape, retargeted from
// signing inter-node gossip messages to signing a single dsmga2 RunResult.
package attestation

import (
	"crypto/ed25519"
	"encoding/json"

	"github.com/pkg/errors"
)

// domainTag is prepended to the canonical payload before signing so a
// signature produced here can never be replayed as valid for some other
// message format that happens to share ed25519 keys.
const domainTag = "dsmga2-run-result-v1\x00"

// ErrVerificationFailed is returned by Verify when the signature does not
// match the payload under the given public key.
var ErrVerificationFailed = errors.New("attestation: signature verification failed")

// GenerateKey returns a fresh ed25519 keypair for signing run results.
func GenerateKey() (ed25519.PublicKey, ed25519.PrivateKey, error) {
	pub, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		return nil, nil, errors.Wrap(err, "attestation: generating key")
	}
	return pub, priv, nil
}

// Attestation pairs a canonical JSON payload with its signature, ready to
// be stored or transmitted alongside a RunResult.
type Attestation struct {
	Payload   []byte `json:"payload"`
	Signature []byte `json:"signature"`
}

// Sign canonically encodes result and signs it with priv.
func Sign(priv ed25519.PrivateKey, result any) (*Attestation, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return nil, errors.Wrap(err, "attestation: encoding run result")
	}
	sig := ed25519.Sign(priv, append([]byte(domainTag), payload...))
	return &Attestation{Payload: payload, Signature: sig}, nil
}

// Verify reports whether a's signature is valid for pub, and if so decodes
// its payload into out (a pointer to the caller's RunResult-shaped type).
func Verify(pub ed25519.PublicKey, a *Attestation, out any) error {
	if !ed25519.Verify(pub, append([]byte(domainTag), a.Payload...), a.Signature) {
		return ErrVerificationFailed
	}
	if out == nil {
		return nil
	}
	return errors.Wrap(json.Unmarshal(a.Payload, out), "attestation: decoding run result")
}
