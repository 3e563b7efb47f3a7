// Package host runs the "host a new site" flow: ask for the folder,
// suffix, database and domain, then update the hosts file and the Homestead
// manifest and re-provision the box.
package host

import (
	"context"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/yansircc/lochost/internal/config"
	"github.com/yansircc/lochost/internal/hosts"
	"github.com/yansircc/lochost/internal/manifest"
	"github.com/yansircc/lochost/internal/notify"
	"github.com/yansircc/lochost/internal/prompt"
	"github.com/yansircc/lochost/internal/provision"
	"github.com/yansircc/lochost/internal/site"
	"github.com/yansircc/lochost/internal/template"
)

// ErrAborted is returned when the operator gives no folder name.
var ErrAborted = errors.New("host creation aborted")

// State is a step of the flow. Steps run in declaration order.
type State int

const (
	CollectFolder State = iota
	CollectSuffix
	CollectDatabase
	CollectDomain
	WriteHosts
	WriteSiteMapping
	WriteDatabase
	Provision
	Done
	Aborted
)

var stateNames = [...]string{
	"collect-folder", "collect-suffix", "collect-database", "collect-domain",
	"write-hosts", "write-site-mapping", "write-database", "provision",
	"done", "aborted",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("state(%d)", int(s))
	}
	return stateNames[s]
}

// Result describes how far a run got.
type Result struct {
	State          State
	Session        site.Session
	MissingAnchors []string
}

// Runner wires the collaborators for one run.
type Runner struct {
	Config      config.Config
	Prompter    prompt.Prompter
	Hosts       hosts.Writer
	Manifest    manifest.Editor
	Provisioner provision.Invoker
	Out         io.Writer
	Log         *zap.Logger
}

// run carries the in-flight values between steps.
type run struct {
	*Runner
	res      *Result
	folder   site.FolderStage
	suffix   site.SuffixStage
	database site.DatabaseStage
}

// Run executes every step in order. It returns ErrAborted, with no file
// touched, when the folder answer is empty.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	if r.Log == nil {
		r.Log = zap.NewNop()
	}
	x := &run{Runner: r, res: &Result{State: CollectFolder}}

	steps := map[State]func(context.Context) error{
		CollectFolder:    x.collectFolder,
		CollectSuffix:    x.collectSuffix,
		CollectDatabase:  x.collectDatabase,
		CollectDomain:    x.collectDomain,
		WriteHosts:       x.writeHosts,
		WriteSiteMapping: x.writeSiteMapping,
		WriteDatabase:    x.writeDatabase,
		Provision:        x.provision,
	}

	for st := CollectFolder; st < Done; st++ {
		x.res.State = st
		r.Log.Debug("entering state", zap.Stringer("state", st))
		if err := steps[st](ctx); err != nil {
			if errors.Is(err, ErrAborted) {
				x.res.State = Aborted
			}
			return x.res, err
		}
	}

	x.res.State = Done
	notify.Successf(r.Out, "Complete!")
	return x.res, nil
}

func (x *run) collectFolder(ctx context.Context) error {
	answer, err := x.Prompter.Ask(ctx, "Folder Name (Leave blank to cancel): ", "")
	if err != nil {
		return errors.Wrap(err, "ask folder")
	}
	x.folder, err = site.Begin(answer)
	if errors.Is(err, site.ErrNoFolder) {
		notify.Errorf(x.Out, "Host creation failed. No folder set")
		return errors.Mark(errors.Wrap(err, "host"), ErrAborted)
	}
	return err
}

func (x *run) collectSuffix(ctx context.Context) error {
	suffix := x.Config.FolderSuffix
	ok, err := x.Prompter.Confirm(ctx, fmt.Sprintf("Point site to %s suffix? (yes) ", suffix), true)
	if err != nil {
		return errors.Wrap(err, "ask suffix")
	}
	x.suffix = x.folder.WithSuffix(ok, suffix)
	return nil
}

func (x *run) collectDatabase(ctx context.Context) error {
	def := x.suffix.DefaultDatabase()
	answer, err := x.Prompter.Ask(ctx, fmt.Sprintf("Database Name: (%s) ", def), def)
	if err != nil {
		return errors.Wrap(err, "ask database")
	}
	x.database = x.suffix.WithDatabase(answer)
	return nil
}

func (x *run) collectDomain(ctx context.Context) error {
	def := x.database.DefaultDomain(x.Config.DomainExtension)
	answer, err := x.Prompter.Ask(ctx, fmt.Sprintf("Development Domain: (%s) ", def), def)
	if err != nil {
		return errors.Wrap(err, "ask domain")
	}
	x.res.Session = x.database.WithDomain(answer)
	x.Log.Info("site collected",
		zap.String("folder", x.res.Session.Folder()),
		zap.String("database", x.res.Session.Database()),
		zap.String("domain", x.res.Session.Domain()))
	return nil
}

func (x *run) writeHosts(context.Context) error {
	domain := x.res.Session.Domain()
	notify.Activityf(x.Out, "Create host (%s)...", domain)
	return x.Hosts.Append(x.Config.HostsFile, x.Config.HostIP, domain)
}

func (x *run) writeSiteMapping(context.Context) error {
	s := x.res.Session
	notify.Activityf(x.Out, "Update Vagrant site mapper (/%s)", s.Folder())
	block := template.SiteMapping(s.Domain(), s.SiteTarget(x.Config.SitesPath))
	return x.insert(manifest.SitesAnchor, block)
}

func (x *run) writeDatabase(context.Context) error {
	s := x.res.Session
	notify.Activityf(x.Out, "Update Vagrant database (%s)", s.Database())
	return x.insert(manifest.DatabasesAnchor, template.DatabaseEntry(s.Database()))
}

// insert treats a missing anchor as a warning so the run carries on.
func (x *run) insert(anchor, block string) error {
	err := x.Manifest.InsertAfterAnchor(x.Config.ManifestPath, anchor, block)
	if errors.Is(err, manifest.ErrAnchorMissing) {
		x.Log.Warn("manifest anchor missing, entry not added",
			zap.String("anchor", anchor), zap.String("manifest", x.Config.ManifestPath))
		notify.Warningf(x.Out, "%q not found in %s, skipped", anchor, x.Config.ManifestPath)
		x.res.MissingAnchors = append(x.res.MissingAnchors, anchor)
		return nil
	}
	return err
}

func (x *run) provision(ctx context.Context) error {
	notify.Activityf(x.Out, "Provision Vagrant")
	return x.Provisioner.Provision(ctx)
}
