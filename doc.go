// Package qlog provides a leveled logging façade: severity-tagged handles
// that forward chained values to a configurable sink, filtered by a
// process-wide level, with optional per-severity decoration and terminal
// color.
//
// Five handles are pre-declared, one per severity ([Debug], [Trace],
// [Info], [Warning], [Error]). A message is composed as a chain of values
// and finished with [Message.End]:
//
//	qlog.Info.Log("foo() returned ").Log(ret).Log(qlog.Endl).End()
//	qlog.Warning.Printf("retrying in %s", delay)
//
// Handles start with no sink. Assign one per handle with
// [Logger.SetOutput], per severity with [SetOutputFor], or everywhere with
// [SetOutputAll]:
//
//	sink, err := qlog.NewFileSink("myprogram.log")
//	qlog.SetOutputAll(sink)
//
// Packages that want their own handle declare one with [NewLogger]; the
// broadcast functions reach every registered instance of a severity, so
// independently declared handles still act as one logical logger.
//
// [SetLogLevel] filters messages globally: only severities at or above the
// filter are written, and [LevelDisabled] silences everything. A single
// statement can be silenced conditionally with [Logger.If]:
//
//	qlog.Warning.If(ret != success).Print("something odd happened")
//
// Decoration text brackets each logical message exactly once, no matter
// how many values are chained. [ApplyDecorations] installs colored
// severity tags; [Style] values can also be chained directly to change
// rendering mid-message. For CLI applications, [Config] integrates flag
// parsing via [github.com/spf13/pflag] with shell completion support via
// [github.com/spf13/cobra], and [FileConfig] loads per-severity decoration
// from YAML.
package qlog
