// Package services implements the query & aggregation core: the hierarchy
// and nutrition query services. Both are stateless, safe for concurrent
// use, and read the catalog exclusively through the driven ports.
package services
