// Package dataproc holds small numeric and text helpers used around the
// user store: batch transforms, price discounts, duplicate detection and
// shape checks for contact details, plus plain file helpers.
package dataproc
