// Command kambel runs the Kambel Consult content platform: the Content
// Authority API server, the Presentation Proxy web server, and the
// supporting configuration and inspection subcommands.
package main
