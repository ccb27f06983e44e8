// Command star_wallet manages the keys a claimant uses to sign registry
// challenges out of band.
//
//	star_wallet keygen
//	star_wallet address -key StK...
//	star_wallet sign -key StK... -message "<address>:<unix_seconds>:starRegistry"
//	star_wallet verify -address StA... -message ... -signature StS...
package main

import (
	"starchain/ec"
	"starchain/version"

	"flag"
	"fmt"
	"os"
	"github.com/pterm/pterm"
)

type _KeyInfo struct {
	PrivKey string
	PubKey string
	Address string
}

func keyInfo(k ec.PrivKey) _KeyInfo {
	p := k.PubKey()
	return _KeyInfo{
		PrivKey: k.String(),
		PubKey: p.String(),
		Address: p.Address().String(),
	}
}

func parseKey(s string) (ec.PrivKey, error) {
	if s == "" {
		return ec.PrivKey{}, fmt.Errorf("-key is required")
	}
	return ec.StringToPrivKey(s)
}

func signMessage(key, message string) (string, error) {
	k, err := parseKey(key)
	if err != nil {
		return "", err
	}
	if message == "" {
		return "", fmt.Errorf("-message is required")
	}
	return ec.SignText(k, message)
}

func printKeyInfo(info _KeyInfo, withPriv bool) error {
	data := pterm.TableData{{"field", "value"}}
	if withPriv {
		data = append(data, []string{"private key", info.PrivKey})
	}
	data = append(data,
		[]string{"public key", info.PubKey},
		[]string{"address", info.Address},
	)
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func run(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: star_wallet keygen|address|sign|verify|version [flags]")
	}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	key := fs.String("key", "", "private key (StK...)")
	message := fs.String("message", "", "message to sign or verify")
	address := fs.String("address", "", "wallet address (StA...)")
	signature := fs.String("signature", "", "signature (StS...)")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	switch args[0] {
	case "keygen":
		info := keyInfo(ec.NewPrivKey())
		if err := printKeyInfo(info, true); err != nil {
			return err
		}
		pterm.Warning.Println("Keep the private key secret; it cannot be recovered.")

	case "address":
		k, err := parseKey(*key)
		if err != nil {
			return err
		}
		return printKeyInfo(keyInfo(k), false)

	case "sign":
		sig, err := signMessage(*key, *message)
		if err != nil {
			return err
		}
		fmt.Println(sig)

	case "verify":
		if (ec.MessageVerifier{}).VerifyMessage(*message, *address, *signature) {
			pterm.Success.Println("signature is valid")
		} else {
			return fmt.Errorf("signature is NOT valid for %s", *address)
		}

	case "version":
		fmt.Println(version.Full())

	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
	return nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}
