// Package artifacts locates the platform binaries produced by a
// packaging run and copies them into a destination directory.
//
// The packaging tool drops its outputs at fixed locations under
// platforms/: Gradle's APK output tree on Android and the device build
// directory on iOS. Discovery uses two fixed glob patterns, one per
// platform. Finding nothing is a reportable condition, not a silent
// no-op — callers surface it as "no app builds found".
package artifacts
