// Package link turns digests into content identifiers.
package link

import (
	"bytes"

	"github.com/ipfs/go-cid"
	"github.com/ipld/go-ipld-prime/codec/dagjson"
	"github.com/ipld/go-ipld-prime/datamodel"
	cidlink "github.com/ipld/go-ipld-prime/linking/cid"
	"github.com/ipld/go-ipld-prime/node/basicnode"
	"github.com/storacha/go-hashsign/hash"
)

// Of returns a CIDv1 for the digest, using the raw codec.
func Of(d hash.Digest) cid.Cid {
	return cid.NewCidV1(cid.Raw, d.Bytes())
}

// Link wraps the CID of a digest as an IPLD link.
func Link(d hash.Digest) datamodel.Link {
	return cidlink.Link{Cid: Of(d)}
}

// JSON encodes the link of a digest as DAG-JSON, e.g. {"/":"bafk..."}.
func JSON(d hash.Digest) ([]byte, error) {
	var buf bytes.Buffer
	if err := dagjson.Encode(basicnode.NewLink(Link(d)), &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
