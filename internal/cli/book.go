package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	domain "github.com/BruksfildServices01/appointment-relay/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-relay/internal/locale"
	"github.com/BruksfildServices01/appointment-relay/internal/timezone"
)

const defaultServerURL = "http://localhost:3000"

// errRejected marks an outcome already explained to the user.
var errRejected = errors.New("booking not accepted")

type bookOptions struct {
	submission domain.Submission
	server     string
	tz         string
	timeout    time.Duration
	now        func() time.Time
}

func newBookCmd() *cobra.Command {
	opts := &bookOptions{now: time.Now}

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book an appointment",
		Long: `Book an appointment. The form is checked locally first; the server
has the final say.

Examples:
  bookctl book --name "Ali Hassan" --phone 0555123456 --date 2025-06-01 --time 10:00 --service haircut
  bookctl book --server https://booking.example --name ... --notes "first visit"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBook(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.submission.FullName, "name", "", "Full name")
	f.StringVar(&opts.submission.Phone, "phone", "", "Phone number")
	f.StringVar(&opts.submission.Date, "date", "", "Date (YYYY-MM-DD)")
	f.StringVar(&opts.submission.Time, "time", "", "Time (HH:MM)")
	f.StringVar(&opts.submission.Service, "service", "", "Service")
	f.StringVar(&opts.submission.Notes, "notes", "", "Optional notes")
	f.StringVar(&opts.server, "server", envOr("BOOKING_SERVER_URL", defaultServerURL), "Booking server base URL")
	f.StringVar(&opts.tz, "timezone", envOr("BOOKING_TIMEZONE", timezone.DefaultTimezone), "Timezone used for the past-date warning")
	f.DurationVar(&opts.timeout, "timeout", 15*time.Second, "Request timeout")

	return cmd
}

func runBook(cmd *cobra.Command, opts *bookOptions) error {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	sub, err := domain.ValidateForm(opts.submission)
	if err != nil {
		if ve, ok := domain.AsValidation(err); ok {
			fmt.Fprintln(errOut, ve.Message)
			return errRejected
		}
		return err
	}

	// advisory only: the server accepts past dates
	if timezone.IsPastDate(sub.Date, opts.tz, opts.now()) {
		fmt.Fprintln(errOut, locale.PastDateAdvisory)
	}

	client := NewBookingClient(opts.server, opts.timeout)
	res, err := client.Book(cmd.Context(), sub)
	if err != nil {
		fmt.Fprintln(errOut, locale.ConnectionProblem)
		return err
	}

	if !res.Success {
		msg := res.Message
		if msg == "" {
			msg = locale.DefaultBookingFailed
		}
		fmt.Fprintln(errOut, msg)
		return errRejected
	}

	fmt.Fprintln(out, res.Message)
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
