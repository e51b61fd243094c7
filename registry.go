package xbuf

import (
	"crypto/rand"
	"encoding/base64"
	"io"
	"sync"
)

// Base64Provider is the standard base64 primitive the package builds the URL safe form on.
// *base64.Encoding satisfies it
type Base64Provider interface {
	EncodeToString(src []byte) string
	DecodeString(s string) ([]byte, error)
}

// ProviderRegistry stores the primitives used when no explicit provider is passed
type ProviderRegistry struct {
	b64     Base64Provider
	entropy io.Reader
	mtx     sync.RWMutex
}

// NewProviderRegistry returns a registry populated with base64.StdEncoding and crypto/rand.Reader
func NewProviderRegistry() *ProviderRegistry {
	return &ProviderRegistry{
		b64:     base64.StdEncoding,
		entropy: rand.Reader,
	}
}

// SetBase64Provider replaces the base64 primitive. It panics if p is nil
func (r *ProviderRegistry) SetBase64Provider(p Base64Provider) {
	if p == nil {
		panic("xbuf: nil base64 provider")
	}
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.b64 = p
}

// SetEntropySource replaces the source of random bytes. The reader must be safe for concurrent use
// if Random is called from multiple goroutines. It panics if src is nil
func (r *ProviderRegistry) SetEntropySource(src io.Reader) {
	if src == nil {
		panic("xbuf: nil entropy source")
	}
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.entropy = src
}

func (r *ProviderRegistry) base64() Base64Provider {
	r.mtx.RLock()
	p := r.b64
	r.mtx.RUnlock()
	return p
}

func (r *ProviderRegistry) entropySource() io.Reader {
	r.mtx.RLock()
	src := r.entropy
	r.mtx.RUnlock()
	return src
}

// SetBase64Provider replaces the base64 primitive in the global registry
func SetBase64Provider(p Base64Provider) {
	defaultProviderRegistry.SetBase64Provider(p)
}

// SetEntropySource replaces the source of random bytes in the global registry
func SetEntropySource(src io.Reader) {
	defaultProviderRegistry.SetEntropySource(src)
}

var defaultProviderRegistry = NewProviderRegistry()
