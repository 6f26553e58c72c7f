package main

import (
	"crypto/ed25519"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"

	"xdao.co/fccid/attest"
	"xdao.co/fccid/fccid"
	"xdao.co/fccid/keys"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}

	switch args[0] {
	case "cid":
		return cmdCID(args[1:], out, errOut)
	case "short":
		return cmdShort(args[1:], out, errOut)
	case "canon":
		return cmdCanon(args[1:], out, errOut)
	case "ipfs-cid":
		return cmdIPFSCID(args[1:], out, errOut)
	case "validate":
		return cmdValidate(args[1:], out, errOut)
	case "attest":
		return cmdAttest(args[1:], out, errOut)
	case "verify":
		return cmdVerify(args[1:], out, errOut)
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
		printUsage(errOut)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "fccid: FCC lattice shape CID CLI")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  fccid cid <shape-file>")
	fmt.Fprintln(w, "  fccid short <shape-file>")
	fmt.Fprintln(w, "  fccid canon <shape-file>")
	fmt.Fprintln(w, "  fccid ipfs-cid <shape-file>")
	fmt.Fprintln(w, "  fccid validate <cid>")
	fmt.Fprintln(w, "  fccid attest --seed-hex <64hex> [--role <role>] [--description <text>] <shape-file>")
	fmt.Fprintln(w, "  fccid verify <attestation-file>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - shape files hold one x,y,z integer triple per line; '#' starts a comment")
	fmt.Fprintln(w, "  - --seed-hex must be 32 bytes (64 hex chars) ed25519 seed")
	fmt.Fprintln(w, "  - --role derives a role subkey from the root seed before signing")
	fmt.Fprintln(w, "  - attest writes canonical attestation bytes to stdout (no trailing extras)")
	fmt.Fprintln(w, "  - validate prints \"valid\" or \"invalid\" and exits 0 or 1")
}

func readShape(path string, errOut io.Writer) ([]byte, bool) {
	b, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(errOut, "read: %v\n", err)
		return nil, false
	}
	return b, true
}

func cmdCID(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(errOut, "usage: fccid cid <shape-file>")
		return 2
	}
	b, ok := readShape(args[0], errOut)
	if !ok {
		return 1
	}
	pts, err := fccid.ParseShape(b)
	if err != nil {
		fmt.Fprintf(errOut, "parse: %v\n", err)
		return 1
	}
	fmt.Fprintln(out, fccid.CID(pts))
	return 0
}

func cmdShort(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(errOut, "usage: fccid short <shape-file>")
		return 2
	}
	b, ok := readShape(args[0], errOut)
	if !ok {
		return 1
	}
	pts, err := fccid.ParseShape(b)
	if err != nil {
		fmt.Fprintf(errOut, "parse: %v\n", err)
		return 1
	}
	fmt.Fprintln(out, fccid.ShortCID(pts))
	return 0
}

func cmdCanon(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(errOut, "usage: fccid canon <shape-file>")
		return 2
	}
	b, ok := readShape(args[0], errOut)
	if !ok {
		return 1
	}
	pts, err := fccid.ParseShape(b)
	if err != nil {
		fmt.Fprintf(errOut, "parse: %v\n", err)
		return 1
	}
	fmt.Fprintln(out, fccid.Canonicalize(pts))
	return 0
}

func cmdIPFSCID(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(errOut, "usage: fccid ipfs-cid <shape-file>")
		return 2
	}
	b, ok := readShape(args[0], errOut)
	if !ok {
		return 1
	}
	pts, err := fccid.ParseShape(b)
	if err != nil {
		fmt.Fprintf(errOut, "parse: %v\n", err)
		return 1
	}
	fmt.Fprintln(out, fccid.CIDv1(pts))
	return 0
}

func cmdValidate(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(errOut, "usage: fccid validate <cid>")
		return 2
	}
	if fccid.IsValidCID(args[0]) {
		fmt.Fprintln(out, "valid")
		return 0
	}
	fmt.Fprintln(out, "invalid")
	return 1
}

func cmdAttest(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("attest", flag.ContinueOnError)
	fs.SetOutput(errOut)
	seedHex := fs.String("seed-hex", "", "ed25519 seed, 64 hex chars")
	role := fs.String("role", "", "derive a role subkey before signing")
	description := fs.String("description", "", "single-line shape description")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 || *seedHex == "" {
		fmt.Fprintln(errOut, "usage: fccid attest --seed-hex <64hex> [--role <role>] [--description <text>] <shape-file>")
		return 2
	}

	seed, err := hex.DecodeString(*seedHex)
	if err != nil || len(seed) != ed25519.SeedSize {
		fmt.Fprintln(errOut, "attest: --seed-hex must be 32 bytes (64 hex chars)")
		return 2
	}
	if *role != "" {
		seed, err = keys.DeriveRoleSeed(seed, *role)
		if err != nil {
			fmt.Fprintf(errOut, "derive: %v\n", err)
			return 1
		}
	}

	b, ok := readShape(fs.Arg(0), errOut)
	if !ok {
		return 1
	}
	pts, err := fccid.ParseShape(b)
	if err != nil {
		fmt.Fprintf(errOut, "parse: %v\n", err)
		return 1
	}

	doc, err := attest.SignEd25519(fccid.CID(pts), *description, ed25519.NewKeyFromSeed(seed))
	if err != nil {
		fmt.Fprintf(errOut, "attest: %v\n", err)
		return 1
	}
	_, _ = out.Write(doc)
	return 0
}

func cmdVerify(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(errOut, "usage: fccid verify <attestation-file>")
		return 2
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(errOut, "read: %v\n", err)
		return 1
	}
	rec, err := attest.Verify(b)
	if err != nil {
		fmt.Fprintf(errOut, "verify: %v\n", err)
		return 1
	}
	fmt.Fprintf(out, "ok %s\n", rec.ShapeCID)
	return 0
}
