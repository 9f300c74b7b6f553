// Package domain contains the Okta organization metadata model shared by the
// controller, the outbound client and the views. Input normalization lives in
// the tenant sub-package. This root package also holds sentinel errors and the
// typed errors returned by the fetch path.
package domain
