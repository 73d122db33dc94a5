package main

import (
	"encoding/hex"
	"flag"
	"fmt"

	"github.com/golang/glog"
	"github.com/visionmarket/addrcodec/bech32"
)

var (
	strictPad = flag.Bool("strict", false, "reject non-canonical padding when regrouping the payload to bytes")
	maxLen    = flag.Int("maxlen", 0, "maximum address length, 0 for unlimited")
)

func main() {
	flag.Parse()
	defer glog.Flush()
	if flag.NArg() == 0 {
		glog.Error("No addresses given")
		return
	}
	for _, addr := range flag.Args() {
		probe(addr)
	}
}

func probe(addr string) {
	fmt.Printf("probe addr=%s\n", addr)
	if *maxLen > 0 && len(addr) > *maxLen {
		glog.Errorf("Address %q exceeds %d characters", addr, *maxLen)
		return
	}
	decoded, err := bech32.Decode(addr)
	if err != nil {
		glog.Errorf("Address %q is malformed: %v", addr, err)
		return
	}
	fmt.Printf("hrp=%s payload_len=%d valid=%v polymod=%#x\n",
		decoded.HRP, len(decoded.Payload), decoded.Valid, decoded.Checksum)
	payload, err := bech32.GroupsToBytes(decoded.Payload, *strictPad)
	if err != nil {
		glog.Warningf("Payload of %q does not regroup to bytes: %v", addr, err)
		return
	}
	fmt.Printf("payload_hex=%s\n", hex.EncodeToString(payload))
}
