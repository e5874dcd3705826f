// Package numfmt renders MBF Single/Double values the way GW-BASIC's
// listing printer, STR$/WRITE, and PRINT USING field formatter do,
// including the legacy scientific-vs-decimal notation switch and the
// E+00/0D+00 zero quirk in PRINT USING scientific fields.
package numfmt
