package xbuf

import (
	"io"
)

type options struct {
	enc     Encoding
	encSet  bool
	b64     Base64Provider
	entropy io.Reader
	reg     *ProviderRegistry
}

func (o *options) apply(opts []Option) *options {
	for _, fn := range opts {
		fn(o)
	}
	return o
}

func (o *options) encoding(def Encoding) Encoding {
	if o.encSet {
		return o.enc
	}
	return def
}

func (o *options) providers() *ProviderRegistry {
	if o.reg != nil {
		return o.reg
	}
	return defaultProviderRegistry
}

func (o *options) base64() Base64Provider {
	if o.b64 != nil {
		return o.b64
	}
	return o.providers().base64()
}

func (o *options) entropySource() io.Reader {
	if o.entropy != nil {
		return o.entropy
	}
	return o.providers().entropySource()
}

// Option is the function pointer used to pass options to constructors
type Option func(*options)

// OpEncoding sets the default encoding used by String and MarshalText. Without this option
// the encoding passed to FromText is used, or UTF8 for binary sources
func OpEncoding(e Encoding) Option { return func(o *options) { o.enc, o.encSet = e, true } }

// OpBase64 provides the base64 primitive for the buffer
func OpBase64(p Base64Provider) Option { return func(o *options) { o.b64 = p } }

// OpEntropy provides the source of random bytes for Random
func OpEntropy(r io.Reader) Option { return func(o *options) { o.entropy = r } }

// OpProviders provides a custom provider registry in place of the global one
func OpProviders(r *ProviderRegistry) Option { return func(o *options) { o.reg = r } }
