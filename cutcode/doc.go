// Package cutcode defines the cut-primitive algebra consumed and produced
// by the planner: typed scalar segments (LineCut, QuadCut, CubicCut,
// RawCut, DwellCut, SetOriginCut, RasterCut) and the CutGroup/CutCode
// container hierarchy that gives them ownership, burn accounting, and
// containment bookkeeping.
//
// Every CutObject implementation satisfies the capability interface
// defined in this package: Start/End respect the object's direction flag,
// Length is shape-appropriate, Generator walks device-accurate pixel
// steps, Reverse/Reversible control direction flipping, and Flat/Candidate
// drive the travel optimizer's traversal.
//
// Each variant lives in its own file (linecut, quadcut, cubiccut, rawcut,
// dwellcut, setorigincut, rastercut, cutgroup, cutcode), all embedding
// CutObjectBase for the shared direction/burn/linkage bookkeeping.
// Children reference their parent group through a plain back-pointer; the
// tracing garbage collector reclaims the resulting cycle, so no weak
// handle or arena indirection is needed.
package cutcode
