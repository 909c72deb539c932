package report

import (
	"fmt"
	"strings"

	"github.com/uxlens/uxlens/pkg/model"
)

// ViewerHTML embeds a wireframe document into the complete viewer page:
// summary stats on top, the wireframe in an iframe, and client-side
// PNG/JPG/HTML export controls. Single quotes in the wireframe are
// escaped so the srcdoc attribute survives.
func ViewerHTML(wireframeHTML string, feedback *model.FeedbackResult) string {
	if feedback == nil {
		feedback = &model.FeedbackResult{}
	}
	summary := feedback.Summary
	escaped := strings.ReplaceAll(wireframeHTML, "'", "&#39;")

	var b strings.Builder
	b.WriteString(viewerHead)
	fmt.Fprintf(&b, viewerStats, summary.TotalIssues, summary.High, summary.Medium, summary.Low)
	fmt.Fprintf(&b, viewerFrame, escaped)
	b.WriteString(viewerScript)
	return b.String()
}

const viewerHead = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>UX Feedback - Improved Wireframe</title>
    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            min-height: 100vh;
            padding: 20px;
        }

        .container {
            max-width: 1400px;
            margin: 0 auto;
        }

        .header {
            text-align: center;
            color: white;
            margin-bottom: 30px;
        }

        .header h1 {
            font-size: 2.5em;
            margin-bottom: 10px;
        }

        .stats {
            background: rgba(255, 255, 255, 0.1);
            backdrop-filter: blur(10px);
            border-radius: 15px;
            padding: 20px;
            margin-bottom: 30px;
            color: white;
        }

        .stats-grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(150px, 1fr));
            gap: 15px;
            margin-top: 15px;
        }

        .stat-item {
            text-align: center;
            padding: 15px;
            background: rgba(255, 255, 255, 0.1);
            border-radius: 10px;
        }

        .stat-value {
            font-size: 2em;
            font-weight: bold;
            display: block;
        }

        .stat-label {
            font-size: 0.9em;
            opacity: 0.9;
        }

        .wireframe-section {
            background: white;
            border-radius: 20px;
            padding: 30px;
            box-shadow: 0 20px 60px rgba(0, 0, 0, 0.3);
        }

        .controls {
            display: flex;
            gap: 15px;
            margin-bottom: 20px;
            flex-wrap: wrap;
        }

        .btn {
            padding: 12px 24px;
            border: none;
            border-radius: 8px;
            font-size: 16px;
            font-weight: 600;
            cursor: pointer;
            transition: all 0.3s ease;
            display: flex;
            align-items: center;
            gap: 8px;
        }

        .btn-primary {
            background: #667eea;
            color: white;
        }

        .btn-primary:hover {
            background: #5568d3;
            transform: translateY(-2px);
            box-shadow: 0 5px 15px rgba(102, 126, 234, 0.4);
        }

        .btn-secondary {
            background: #48bb78;
            color: white;
        }

        .btn-secondary:hover {
            background: #38a169;
            transform: translateY(-2px);
            box-shadow: 0 5px 15px rgba(72, 187, 120, 0.4);
        }

        .wireframe-viewer {
            background: #f7fafc;
            border-radius: 15px;
            padding: 20px;
            min-height: 600px;
            border: 2px solid #e2e8f0;
        }

        .wireframe-iframe {
            width: 100%;
            min-height: 800px;
            border: none;
            background: white;
            border-radius: 10px;
            box-shadow: 0 4px 6px rgba(0, 0, 0, 0.1);
        }

        .info {
            margin-top: 20px;
            padding: 15px;
            background: #ebf8ff;
            border-left: 4px solid #3182ce;
            border-radius: 5px;
        }

        .info h3 {
            color: #2c5282;
            margin-bottom: 10px;
        }

        .info ul {
            margin-left: 20px;
            color: #2d3748;
        }

        .info li {
            margin: 5px 0;
        }

        @media (max-width: 768px) {
            .header h1 {
                font-size: 1.8em;
            }

            .stats-grid {
                grid-template-columns: repeat(2, 1fr);
            }

            .controls {
                flex-direction: column;
            }

            .btn {
                width: 100%;
                justify-content: center;
            }
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>🎨 Improved UI Wireframe</h1>
            <p>Based on UX Heuristic Evaluation &amp; Feedback</p>
        </div>
`

const viewerStats = `
        <div class="stats">
            <h2>📊 Evaluation Summary</h2>
            <div class="stats-grid">
                <div class="stat-item">
                    <span class="stat-value">%d</span>
                    <span class="stat-label">Total Issues</span>
                </div>
                <div class="stat-item">
                    <span class="stat-value" style="color: #f56565;">%d</span>
                    <span class="stat-label">High Priority</span>
                </div>
                <div class="stat-item">
                    <span class="stat-value" style="color: #ed8936;">%d</span>
                    <span class="stat-label">Medium Priority</span>
                </div>
                <div class="stat-item">
                    <span class="stat-value" style="color: #48bb78;">%d</span>
                    <span class="stat-label">Low Priority</span>
                </div>
            </div>
        </div>
`

const viewerFrame = `
        <div class="wireframe-section">
            <div class="controls">
                <button class="btn btn-primary" onclick="exportAsPNG()">
                    📥 Export as PNG
                </button>
                <button class="btn btn-secondary" onclick="exportAsJPG()">
                    📥 Export as JPG
                </button>
                <button class="btn btn-primary" onclick="downloadHTML()">
                    💾 Download HTML
                </button>
            </div>

            <div class="wireframe-viewer">
                <iframe
                    id="wireframe-iframe"
                    class="wireframe-iframe"
                    srcdoc='%s'
                ></iframe>
            </div>

            <div class="info">
                <h3>ℹ️ How to Export</h3>
                <ul>
                    <li><strong>Export as PNG/JPG:</strong> Click the export button to download the wireframe as an image</li>
                    <li><strong>Download HTML:</strong> Get the complete HTML code to edit further</li>
                    <li><strong>View in Browser:</strong> This page is already saved and can be opened in any browser</li>
                </ul>
            </div>
        </div>
    </div>
`

const viewerScript = `
    <script src="https://cdnjs.cloudflare.com/ajax/libs/html2canvas/1.4.1/html2canvas.min.js"></script>
    <script>
        async function exportAs(format, mime, quality) {
            const iframe = document.getElementById('wireframe-iframe');
            const iframeDocument = iframe.contentDocument || iframe.contentWindow.document;

            try {
                const canvas = await html2canvas(iframeDocument.body, {
                    scale: 2,
                    backgroundColor: '#ffffff',
                    logging: false
                });

                canvas.toBlob(function(blob) {
                    const url = URL.createObjectURL(blob);
                    const a = document.createElement('a');
                    a.href = url;
                    a.download = 'improved-wireframe-' + Date.now() + '.' + format;
                    a.click();
                    URL.revokeObjectURL(url);
                }, mime, quality);

                showNotification(format.toUpperCase() + ' export started!');
            } catch (error) {
                console.error('Export error:', error);
                alert('Export failed. Try downloading the HTML instead.');
            }
        }

        function exportAsPNG() {
            exportAs('png', 'image/png');
        }

        function exportAsJPG() {
            exportAs('jpg', 'image/jpeg', 0.95);
        }

        function downloadHTML() {
            const iframe = document.getElementById('wireframe-iframe');
            const html = iframe.srcdoc;

            const blob = new Blob([html], { type: 'text/html' });
            const url = URL.createObjectURL(blob);
            const a = document.createElement('a');
            a.href = url;
            a.download = 'improved-wireframe-' + Date.now() + '.html';
            a.click();
            URL.revokeObjectURL(url);

            showNotification('HTML downloaded!');
        }

        function showNotification(message) {
            const notification = document.createElement('div');
            notification.textContent = message;
            notification.style.cssText = 'position: fixed; top: 20px; right: 20px; background: #48bb78; color: white; padding: 15px 25px; border-radius: 8px; box-shadow: 0 4px 6px rgba(0,0,0,0.1); z-index: 10000;';
            document.body.appendChild(notification);

            setTimeout(() => notification.remove(), 3000);
        }
    </script>
</body>
</html>`
