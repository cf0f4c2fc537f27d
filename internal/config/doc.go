// Package config provides configuration loading, merging, and validation
// facilities for the admin console and the public site.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win, later sources fill empty fields):
//  1. .env file
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// The main entry points are [GetAdminConfig] and [GetSiteConfig], both built
// on top of [GetStructuredConfig].
package config
