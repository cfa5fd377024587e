/*
Steamlet runs Steam games from the commandline intuitively via aliases or IDs.

The project has one main source package:
`internal`: Private application and library code.

Aliases are kept in a single JSON file under the per-user local data
directory; launches are handed to the Steam client, preferring a flatpak
install over a native one.
*/
package main
