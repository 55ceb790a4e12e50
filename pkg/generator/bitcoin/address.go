package bitcoin

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/txscript"

	"github.com/Amr-9/vanityhunt/pkg/generator"
)

// DeriveAddress derives a Bitcoin address from a public key based on the address type.
func DeriveAddress(pubKey *btcec.PublicKey, addrType generator.AddressType) (string, error) {
	var (
		addr btcutil.Address
		err  error
	)

	switch addrType {
	case generator.AddressTypeLegacy:
		addr, err = btcutil.NewAddressPubKeyHash(btcutil.Hash160(pubKey.SerializeCompressed()), Params)
	case generator.AddressTypeNestedSegWit:
		addr, err = nestedSegWitAddress(pubKey)
	case generator.AddressTypeNativeSegWit:
		addr, err = btcutil.NewAddressWitnessPubKeyHash(btcutil.Hash160(pubKey.SerializeCompressed()), Params)
	default:
		addr, err = taprootAddress(pubKey)
	}
	if err != nil {
		return "", err
	}
	return addr.EncodeAddress(), nil
}

// taprootAddress creates a P2TR (bc1p...) address for a key-path only spend.
// BIP-341: the output key is P + hash_TapTweak(P)*G.
func taprootAddress(pubKey *btcec.PublicKey) (btcutil.Address, error) {
	tweaked := txscript.ComputeTaprootKeyNoScript(pubKey)
	return btcutil.NewAddressTaproot(schnorr.SerializePubKey(tweaked), Params)
}

// nestedSegWitAddress wraps a P2WPKH program inside a P2SH script (3...).
// Address = Base58Check(0x05 + HASH160(0x0014 + HASH160(pubkey)))
func nestedSegWitAddress(pubKey *btcec.PublicKey) (btcutil.Address, error) {
	redeemScript, err := txscript.NewScriptBuilder().
		AddOp(txscript.OP_0).
		AddData(btcutil.Hash160(pubKey.SerializeCompressed())).
		Script()
	if err != nil {
		return nil, err
	}
	return btcutil.NewAddressScriptHash(redeemScript, Params)
}
